// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavplay/wave"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const (
	mp3Channels      = 2
	mp3BitsPerSample = 16
	mp3FrameSize     = mp3Channels * mp3BitsPerSample / 8
)

// mp3Reader is the part of gomp3.Decoder used here, to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// MP3 renders MPEG-1/2 layer III audio.
type MP3 struct{}

func (MP3) Render(r io.Reader) ([]byte, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return renderMP3(dec)
}

func renderMP3(dec mp3Reader) ([]byte, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	pcm = pcm[:len(pcm)-len(pcm)%mp3FrameSize]

	out := bytes.NewBuffer(make([]byte, 0, wave.HeaderSize+len(pcm)))
	if err := wave.WritePCM(out, dec.SampleRate(), mp3Channels, mp3BitsPerSample, pcm); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
