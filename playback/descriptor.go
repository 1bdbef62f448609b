// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"

	"github.com/ik5/wavplay/wave"
)

// Descriptor is what an output device needs to know about the PCM it is fed.
type Descriptor struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	BytesPerFrame int
	// Signed is false for 8-bit WAVE data, which is stored unsigned.
	Signed bool
}

// DescriptorFor derives a device descriptor from a parsed header.
// The channel count doubles as the frame multiplier.
func DescriptorFor(h wave.Header) (Descriptor, error) {
	if h.Channels == 0 {
		return Descriptor{}, ErrNoChannels
	}
	if h.BitsPerSample == 0 || h.BitsPerSample%8 != 0 {
		return Descriptor{}, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, h.BitsPerSample)
	}

	return Descriptor{
		SampleRate:    int(h.SampleRate),
		Channels:      int(h.Channels),
		BitsPerSample: int(h.BitsPerSample),
		BytesPerFrame: int(h.Channels) * int(h.BitsPerSample) / 8,
		Signed:        h.BitsPerSample > 8,
	}, nil
}

// Format returns the go-audio equivalent of d.
func (d Descriptor) Format() *audio.Format {
	return &audio.Format{NumChannels: d.Channels, SampleRate: d.SampleRate}
}

// BytesPerSample is the width of a single channel sample.
func (d Descriptor) BytesPerSample() int { return d.BitsPerSample / 8 }

// Duration is the play time of n payload bytes.
func (d Descriptor) Duration(n int) time.Duration {
	if d.SampleRate == 0 || d.BytesPerFrame == 0 {
		return 0
	}
	frames := int64(n / d.BytesPerFrame)
	return time.Duration(frames) * time.Second / time.Duration(d.SampleRate)
}
