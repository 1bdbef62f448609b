// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavplay/wave"
)

const aiffReadSamples = 8192

// aiffReader is the part of aiff.Decoder used here, to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// AIFF renders uncompressed AIFF at its own bit depth. AIFF samples are
// big-endian and 8-bit AIFF is signed, so every sample is rewritten.
type AIFF struct{}

func (AIFF) Render(r io.Reader) ([]byte, error) {
	// go-audio requires io.ReadSeeker
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return renderAIFF(dec, int(dec.BitDepth))
}

func renderAIFF(dec aiffReader, bitDepth int) ([]byte, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAiffDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrNoChannels
	}

	buf := &goaudio.IntBuffer{
		Data:           make([]int, aiffReadSamples),
		Format:         format,
		SourceBitDepth: bitDepth,
	}
	var pcm []byte

	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			pcm = appendSample(pcm, v, bitDepth)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frame := format.NumChannels * bitDepth / 8
	pcm = pcm[:len(pcm)-len(pcm)%frame]

	out := bytes.NewBuffer(make([]byte, 0, wave.HeaderSize+len(pcm)))
	if err := wave.WritePCM(out, format.SampleRate, format.NumChannels, bitDepth, pcm); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// appendSample writes a signed sample in WAVE's little-endian layout.
// 8-bit WAVE is offset binary.
func appendSample(dst []byte, v, bitDepth int) []byte {
	switch bitDepth {
	case 8:
		return append(dst, byte(v+128))
	case 16:
		return binary.LittleEndian.AppendUint16(dst, uint16(int16(v)))
	case 24:
		return append(dst, byte(v), byte(v>>8), byte(v>>16))
	default:
		return binary.LittleEndian.AppendUint32(dst, uint32(int32(v)))
	}
}
