// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ParseError
		want error
	}{
		{"truncated", truncated("riffSize", 4, 1), ErrTruncated},
		{"bad tag", badTag("waveTag", [4]byte{'W', 'A', 'V', 'E'}, [4]byte{'A', 'V', 'I', ' '}), ErrBadTag},
		{"unsupported format", &ParseError{Kind: KindUnsupportedFormat, Field: "audioFormat", Code: 2}, ErrUnsupportedFormat},
		{"invalid field", invalidField("sampleRate", "must be greater than zero"), ErrInvalidField},
	}

	sentinels := []error{ErrTruncated, ErrBadTag, ErrUnsupportedFormat, ErrInvalidField}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, s := range sentinels {
				if got := errors.Is(tt.err, s); got != (s == tt.want) {
					t.Errorf("errors.Is(%v, %v) = %v", tt.err, s, got)
				}
			}
		})
	}
}

func TestParseError_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ParseError
		want []string
	}{
		{
			name: "truncated",
			err:  truncated("dataSize", 4, 2),
			want: []string{"truncated", `"dataSize"`, "4 bytes", "2 available"},
		},
		{
			name: "bad tag",
			err:  badTag("fmtTag", [4]byte{'f', 'm', 't', ' '}, [4]byte{'L', 'I', 'S', 'T'}),
			want: []string{"bad tag", `"fmtTag"`, `"fmt "`, `"LIST"`},
		},
		{
			name: "unsupported format",
			err:  &ParseError{Kind: KindUnsupportedFormat, Field: "audioFormat", Code: 17},
			want: []string{"unsupported format", "17"},
		},
		{
			name: "invalid field",
			err:  invalidField("sampleRate", "must be greater than zero"),
			want: []string{"invalid field", "sampleRate", "must be greater than zero"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := tt.err.Error()
			if !strings.HasPrefix(msg, "wave: ") {
				t.Errorf("Error() = %q, want prefix \"wave: \"", msg)
			}
			for _, part := range tt.want {
				if !strings.Contains(msg, part) {
					t.Errorf("Error() = %q, missing %q", msg, part)
				}
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	if got := Kind(0).String(); got != "kind(0)" {
		t.Errorf("Kind(0).String() = %q, want \"kind(0)\"", got)
	}
	if got := KindBadTag.String(); got != "bad tag" {
		t.Errorf("KindBadTag.String() = %q, want \"bad tag\"", got)
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := map[string]error{
		"ErrTruncated":         ErrTruncated,
		"ErrBadTag":            ErrBadTag,
		"ErrUnsupportedFormat": ErrUnsupportedFormat,
		"ErrInvalidField":      ErrInvalidField,
		"ErrPayloadTooLarge":   ErrPayloadTooLarge,
	}

	messages := make(map[string]string)
	for name, err := range allErrors {
		msg := err.Error()
		if existing, found := messages[msg]; found {
			t.Errorf("%s has same message as %s: %q", name, existing, msg)
		}
		messages[msg] = name
	}
}
