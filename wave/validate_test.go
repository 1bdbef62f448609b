// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(h *Header)
		fields []string
	}{
		{"consistent", func(h *Header) {}, nil},
		{"byte rate", func(h *Header) { h.ByteRate++ }, []string{"byteRate"}},
		{"block align", func(h *Header) { h.BlockAlign = 3 }, []string{"blockAlign", "byteRate", "dataSize"}},
		{"odd bits", func(h *Header) { h.BitsPerSample = 12 }, []string{"bitsPerSample", "blockAlign"}},
		{"no channels", func(h *Header) { h.Channels = 0 }, []string{"channelCount", "blockAlign"}},
		{"partial frame", func(h *Header) { h.DataSize = 6 }, []string{"dataSize"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHeader(44100, 2, 16, 8)
			tt.mutate(&h)

			err := Validate(h)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("Validate() error = %v, want ErrInvalidField", err)
			}

			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() error %T is not a joined error", err)
			}

			var got []string
			for _, e := range joined.Unwrap() {
				var perr *ParseError
				if errors.As(e, &perr) {
					got = append(got, perr.Field)
				}
			}

			if len(got) != len(tt.fields) {
				t.Fatalf("Validate() fields = %v, want %v", got, tt.fields)
			}
			for i := range got {
				if got[i] != tt.fields[i] {
					t.Errorf("Validate() fields = %v, want %v", got, tt.fields)
					break
				}
			}
		})
	}
}
