// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"fmt"
)

// Validate applies the consistency checks Parse deliberately skips: byte
// rate and block align against the other fields, and a byte-aligned bit
// depth. Real-world files sometimes disagree, so this is opt-in.
//
// Every failed check is reported; the result is nil or a join of
// *ParseError values of KindInvalidField.
func Validate(h Header) error {
	var errs []error

	if h.Channels == 0 {
		errs = append(errs, invalidField("channelCount", "must be greater than zero"))
	}

	if h.BitsPerSample == 0 || h.BitsPerSample%8 != 0 {
		errs = append(errs, invalidField("bitsPerSample",
			fmt.Sprintf("%d is not a positive multiple of 8", h.BitsPerSample)))
	}

	wantAlign := uint32(h.Channels) * uint32(h.BitsPerSample) / 8
	if uint32(h.BlockAlign) != wantAlign {
		errs = append(errs, invalidField("blockAlign",
			fmt.Sprintf("%d, want channels*bitsPerSample/8 = %d", h.BlockAlign, wantAlign)))
	}

	wantRate := uint64(h.SampleRate) * uint64(h.BlockAlign)
	if uint64(h.ByteRate) != wantRate {
		errs = append(errs, invalidField("byteRate",
			fmt.Sprintf("%d, want sampleRate*blockAlign = %d", h.ByteRate, wantRate)))
	}

	if fs := h.FrameSize(); fs > 0 && int(h.DataSize)%fs != 0 {
		errs = append(errs, invalidField("dataSize",
			fmt.Sprintf("%d is not a whole number of %d-byte frames", h.DataSize, fs)))
	}

	return errors.Join(errs...)
}
