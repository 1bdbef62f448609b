// SPDX-License-Identifier: EPL-2.0

// Package wavetest builds WAVE file images for tests.
package wavetest

import (
	"bytes"
	"io"

	"github.com/ik5/wavplay/wave"
)

// Ramp returns n payload bytes counting up from 0 and wrapping at 256, so
// any misplaced copy shows up as a value mismatch.
func Ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// File returns a canonical file image around pcm.
func File(sampleRate, channels, bitsPerSample int, pcm []byte) []byte {
	return Encode(wave.NewHeader(sampleRate, channels, bitsPerSample, uint32(len(pcm))), pcm)
}

// Encode serializes h and pcm exactly as given, so tests can describe
// headers that disagree with their payload.
func Encode(h wave.Header, pcm []byte) []byte {
	buf := new(bytes.Buffer)
	// bytes.Buffer writes never fail
	_ = wave.Encode(buf, h, pcm)
	return buf.Bytes()
}

// WithTag returns a copy of file with the 4 bytes at off replaced by tag.
func WithTag(file []byte, off int, tag string) []byte {
	out := bytes.Clone(file)
	copy(out[off:off+4], tag)
	return out
}

// Stream hides every method of r except Read, so parsers cannot ask how much
// input is left.
func Stream(r io.Reader) io.Reader {
	return struct{ io.Reader }{r}
}

// Tag offsets inside a canonical header.
const (
	RiffTagOffset = 0
	WaveTagOffset = 8
	FmtTagOffset  = 12
	DataTagOffset = 36
)
