// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"
)

// WAV passes WAVE files through untouched; the parser decides if they are playable.
type WAV struct{}

func (WAV) Render(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return b, nil
}
