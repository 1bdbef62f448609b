// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the length of the canonical header, RIFF tag through data size.
	HeaderSize = 44

	// FormatPCM is the only audio format code this package plays.
	FormatPCM = 1

	// PCMFmtChunkSize is the fmt sub-chunk size written for linear PCM.
	PCMFmtChunkSize = 16

	// riffSizeOverhead is what RiffSize adds to the data size for a canonical file.
	riffSizeOverhead = HeaderSize - 8
)

// Header is the decoded canonical RIFF/WAVE header.
type Header struct {
	RiffTag  [4]byte
	RiffSize uint32 // file size minus 8, never checked against the stream
	WaveTag  [4]byte

	FmtTag        [4]byte
	FmtChunkSize  uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	DataTag  [4]byte
	DataSize uint32
}

// NewHeader returns a canonical PCM header with the derived fields filled in.
func NewHeader(sampleRate, channels, bitsPerSample int, dataSize uint32) Header {
	blockAlign := uint16(channels * bitsPerSample / 8)

	return Header{
		RiffTag:       riff.RiffID,
		RiffSize:      riffSizeOverhead + dataSize,
		WaveTag:       riff.WavFormatID,
		FmtTag:        riff.FmtID,
		FmtChunkSize:  PCMFmtChunkSize,
		AudioFormat:   FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: uint16(bitsPerSample),
		DataTag:       riff.DataFormatID,
		DataSize:      dataSize,
	}
}

// BytesPerSample is the width of one sample of one channel.
func (h Header) BytesPerSample() int { return int(h.BitsPerSample) / 8 }

// FrameSize is the byte span of one sample across all channels. BlockAlign is
// trusted when set; otherwise it is derived from channels and bit depth.
func (h Header) FrameSize() int {
	if h.BlockAlign > 0 {
		return int(h.BlockAlign)
	}
	return int(h.Channels) * h.BytesPerSample()
}

// Frames is the number of whole frames in the payload.
func (h Header) Frames() int {
	fs := h.FrameSize()
	if fs == 0 {
		return 0
	}
	return int(h.DataSize) / fs
}

// Duration is the play time of the payload at SampleRate.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Frames()) * time.Second / time.Duration(h.SampleRate)
}

// Format returns the go-audio descriptor a playback device needs.
func (h Header) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(h.Channels),
		SampleRate:  int(h.SampleRate),
	}
}

// String renders every header field, one per line.
func (h Header) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "riff tag:        %s\n", h.RiffTag[:])
	fmt.Fprintf(&sb, "riff size:       %d\n", h.RiffSize)
	fmt.Fprintf(&sb, "wave tag:        %s\n", h.WaveTag[:])
	fmt.Fprintf(&sb, "fmt tag:         %s\n", h.FmtTag[:])
	fmt.Fprintf(&sb, "fmt chunk size:  %d\n", h.FmtChunkSize)
	fmt.Fprintf(&sb, "audio format:    %d\n", h.AudioFormat)
	fmt.Fprintf(&sb, "channels:        %d\n", h.Channels)
	fmt.Fprintf(&sb, "sample rate:     %d\n", h.SampleRate)
	fmt.Fprintf(&sb, "byte rate:       %d\n", h.ByteRate)
	fmt.Fprintf(&sb, "block align:     %d\n", h.BlockAlign)
	fmt.Fprintf(&sb, "bits per sample: %d\n", h.BitsPerSample)
	fmt.Fprintf(&sb, "data tag:        %s\n", h.DataTag[:])
	fmt.Fprintf(&sb, "data size:       %d\n", h.DataSize)

	return sb.String()
}

// Payload locates the sample bytes inside the source the header was read from.
// It does not own those bytes.
type Payload struct {
	Offset int64
	Length uint32
}

// End is the offset one past the last payload byte.
func (p Payload) End() int64 { return p.Offset + int64(p.Length) }

// Slice returns the payload's view into src without copying.
func (p Payload) Slice(src []byte) ([]byte, error) {
	if p.Offset < 0 || p.End() > int64(len(src)) {
		return nil, truncated("data", int64(p.Length), max(int64(len(src))-p.Offset, 0))
	}
	return src[p.Offset:p.End():p.End()], nil
}
