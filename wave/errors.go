// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates the source ended before a field or the payload was complete.
	ErrTruncated = errors.New("truncated WAVE data")
	// ErrBadTag indicates a chunk tag did not match the canonical layout.
	ErrBadTag = errors.New("unexpected WAVE chunk tag")
	// ErrUnsupportedFormat indicates a structurally valid file that is not linear PCM.
	ErrUnsupportedFormat = errors.New("unsupported WAVE audio format")
	// ErrInvalidField indicates a header field failed a sanity check.
	ErrInvalidField = errors.New("invalid WAVE header field")
	// ErrPayloadTooLarge is returned by ReadPayload when the declared payload
	// exceeds the caller's limit.
	ErrPayloadTooLarge = errors.New("WAVE payload exceeds limit")
)

// Kind classifies a ParseError.
type Kind int

const (
	KindTruncated Kind = iota + 1
	KindBadTag
	KindUnsupportedFormat
	KindInvalidField
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindBadTag:
		return "bad tag"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindInvalidField:
		return "invalid field"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseError describes why a header could not be decoded.
// Only the fields relevant to Kind are populated.
type ParseError struct {
	Kind  Kind
	Field string

	// KindBadTag
	Expected [4]byte
	Found    [4]byte

	// KindTruncated
	BytesExpected  int64
	BytesAvailable int64

	// KindUnsupportedFormat
	Code   uint16
	Header *Header // every fixed field, as read

	// KindInvalidField
	Reason string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindTruncated:
		return fmt.Sprintf("wave: %s: field %q needs %d bytes, %d available",
			e.Kind, e.Field, e.BytesExpected, e.BytesAvailable)
	case KindBadTag:
		return fmt.Sprintf("wave: %s: field %q expected %q, found %q",
			e.Kind, e.Field, e.Expected[:], e.Found[:])
	case KindUnsupportedFormat:
		return fmt.Sprintf("wave: %s: audio format code %d is not linear PCM", e.Kind, e.Code)
	case KindInvalidField:
		if e.Reason != "" {
			return fmt.Sprintf("wave: %s: %s: %s", e.Kind, e.Field, e.Reason)
		}
		return fmt.Sprintf("wave: %s: %s", e.Kind, e.Field)
	default:
		return fmt.Sprintf("wave: %s: %s", e.Kind, e.Field)
	}
}

// Unwrap maps the error onto its package sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindTruncated:
		return ErrTruncated
	case KindBadTag:
		return ErrBadTag
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindInvalidField:
		return ErrInvalidField
	default:
		return nil
	}
}

func truncated(field string, expected, available int64) *ParseError {
	return &ParseError{
		Kind:           KindTruncated,
		Field:          field,
		BytesExpected:  expected,
		BytesAvailable: available,
	}
}

func badTag(field string, expected, found [4]byte) *ParseError {
	return &ParseError{Kind: KindBadTag, Field: field, Expected: expected, Found: found}
}

func invalidField(field, reason string) *ParseError {
	return &ParseError{Kind: KindInvalidField, Field: field, Reason: reason}
}
