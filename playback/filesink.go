// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavplay/feed"
	"github.com/ik5/wavplay/wave"
)

// FileSink writes the chunks it receives into a new WAV file through the
// go-audio encoder. Chunk boundaries need not fall on frames; a partial
// frame is held until the next chunk completes it.
type FileSink struct {
	w       io.WriteSeeker
	closer  io.Closer
	desc    Descriptor
	enc     *wav.Encoder
	buf     *audio.IntBuffer
	pending []byte
	written bool
}

// NewFileSink encodes into w, which must be empty and seekable so the
// encoder can patch the sizes on Close. w is not closed.
func NewFileSink(w io.WriteSeeker, d Descriptor) (*FileSink, error) {
	switch d.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, d.BitsPerSample)
	}
	if d.Channels <= 0 {
		return nil, ErrNoChannels
	}

	return &FileSink{
		w:    w,
		desc: d,
		enc:  wav.NewEncoder(w, d.SampleRate, d.BitsPerSample, d.Channels, wave.FormatPCM),
		buf:  &audio.IntBuffer{Format: d.Format(), SourceBitDepth: d.BitsPerSample},
	}, nil
}

// CreateFileSink creates path and encodes into it. Close closes the file.
func CreateFileSink(path string, d Descriptor) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	s, err := NewFileSink(f, d)
	if err != nil {
		return nil, errors.Join(err, f.Close(), os.Remove(path))
	}
	s.closer = f

	return s, nil
}

func (s *FileSink) Write(_ context.Context, c feed.Chunk) error {
	s.pending = append(s.pending, c.Data...)

	whole := len(s.pending) - len(s.pending)%s.desc.BytesPerFrame
	if whole == 0 {
		return nil
	}

	if err := s.encode(s.pending[:whole]); err != nil {
		return err
	}
	s.pending = append(s.pending[:0], s.pending[whole:]...)

	return nil
}

func (s *FileSink) encode(pcm []byte) error {
	width := s.desc.BytesPerSample()
	n := len(pcm) / width

	if cap(s.buf.Data) < n {
		s.buf.Data = make([]int, n)
	}
	s.buf.Data = s.buf.Data[:n]

	for i := range n {
		s.buf.Data[i] = sampleAt(pcm[i*width:(i+1)*width])
	}

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("playback: encoding: %w", err)
	}
	s.written = true

	return nil
}

// Close finishes the file. A trailing partial frame is dropped and reported.
func (s *FileSink) Close() error {
	var errs []error

	if !s.written {
		// the encoder only writes its header on the first Write
		if err := s.encode(nil); err != nil {
			errs = append(errs, err)
		}
	}

	if len(s.pending) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d bytes dropped", ErrPartialFrame, len(s.pending)))
		s.pending = nil
	}

	if err := s.enc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("playback: closing encoder: %w", err))
	}

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("playback: %w", err))
		}
	}

	return errors.Join(errs...)
}

// sampleAt decodes one little-endian sample in the representation the
// go-audio encoder expects back: unsigned for 8-bit, signed otherwise.
func sampleAt(b []byte) int {
	switch len(b) {
	case 1:
		return int(b[0])
	case 2:
		return int(int16(binary.LittleEndian.Uint16(b)))
	case 3:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v -= 1 << 24
		}
		return int(v)
	default:
		return int(int32(binary.LittleEndian.Uint32(b)))
	}
}
