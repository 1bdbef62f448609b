// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/wavplay/wave"
)

const vorbisReadFrames = 4096

// oggReader is the part of oggvorbis.Reader used here, to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Vorbis renders Ogg Vorbis audio as 16-bit PCM.
type Vorbis struct{}

func (Vorbis) Render(r io.Reader) ([]byte, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return renderVorbis(dec)
}

func renderVorbis(dec oggReader) ([]byte, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	samples := make([]float32, vorbisReadFrames*channels)
	var pcm []byte

	for {
		// n counts interleaved values, not frames
		n, err := dec.Read(samples)
		for _, s := range samples[:n] {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(floatToInt16(s)))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	frame := channels * 2
	pcm = pcm[:len(pcm)-len(pcm)%frame]

	out := bytes.NewBuffer(make([]byte, 0, wave.HeaderSize+len(pcm)))
	if err := wave.WritePCM(out, dec.SampleRate(), channels, 16, pcm); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// floatToInt16 clamps x to [-1, 1] and scales it to the int16 range.
func floatToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}
