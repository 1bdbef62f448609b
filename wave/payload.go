// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// NoLimit disables the payload size check in ReadPayload.
const NoLimit uint32 = 0

// ReadPayload materializes the payload described by p from r, which must be
// positioned at p.Offset (as Parse leaves it). limit caps the allocation; a
// payload declaring more than limit bytes is rejected before anything is read.
// Memory grows with the bytes actually read, not with the declared length.
func ReadPayload(r io.Reader, p Payload, limit uint32) ([]byte, error) {
	if limit != NoLimit && p.Length > limit {
		return nil, fmt.Errorf("%w: %d bytes declared, limit %d", ErrPayloadTooLarge, p.Length, limit)
	}

	if avail, ok := remaining(r); ok && avail >= int64(p.Length) {
		data := make([]byte, p.Length)
		if n, err := io.ReadFull(r, data); err != nil {
			return nil, readError(p, int64(n), err)
		}
		return data, nil
	}

	// the source cannot back the declared length up front, so let the
	// buffer grow with what actually arrives
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, r, int64(p.Length))
	if err != nil {
		return nil, readError(p, n, err)
	}

	return buf.Bytes(), nil
}

func readError(p Payload, n int64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return truncated("data", int64(p.Length), n)
	}
	return fmt.Errorf("wave: reading data: %w", err)
}
