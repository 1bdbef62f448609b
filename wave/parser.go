// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// fieldReader reads fixed-width little-endian fields and turns short reads
// into truncation errors naming the field.
type fieldReader struct {
	r   io.Reader
	buf [4]byte
	n   int64 // bytes consumed so far
}

func (fr *fieldReader) read(field string, width int) ([]byte, error) {
	b := fr.buf[:width]
	n, err := io.ReadFull(fr.r, b)
	fr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, truncated(field, int64(width), int64(n))
		}
		return nil, fmt.Errorf("wave: reading %s: %w", field, err)
	}
	return b, nil
}

func (fr *fieldReader) tag(field string, want [4]byte) ([4]byte, error) {
	var got [4]byte
	b, err := fr.read(field, 4)
	if err != nil {
		return got, err
	}
	copy(got[:], b)
	if got != want {
		return got, badTag(field, want, got)
	}
	return got, nil
}

func (fr *fieldReader) u32(field string) (uint32, error) {
	b, err := fr.read(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (fr *fieldReader) u16(field string) (uint16, error) {
	b, err := fr.read(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Parse decodes the canonical header from r, field by field in file order,
// and reports where the sample payload starts. The payload itself is not read.
//
// When r can report how many bytes remain (bytes.Reader, strings.Reader,
// os.File and other io.Seekers) a DataSize larger than the remaining input is
// a truncation error. For plain streams the shortfall surfaces in ReadPayload.
//
// No header is returned on error. r is left at or before the failing field.
// A structurally sound header with a non-PCM format code is read to the end
// and the decoded fields travel on the *ParseError for inspection.
func Parse(r io.Reader) (Header, Payload, error) {
	start := position(r)
	fr := &fieldReader{r: r}

	h, err := parseFields(fr)
	if err != nil {
		return Header{}, Payload{}, err
	}

	if avail, ok := remaining(r); ok && int64(h.DataSize) > avail {
		return Header{}, Payload{}, truncated("data", int64(h.DataSize), avail)
	}

	return h, Payload{Offset: start + fr.n, Length: h.DataSize}, nil
}

// ParseBytes is Parse over an in-memory file image.
func ParseBytes(b []byte) (Header, Payload, error) {
	return Parse(bytes.NewReader(b))
}

func parseFields(fr *fieldReader) (Header, error) {
	var (
		h   Header
		err error
	)

	if h.RiffTag, err = fr.tag("riffTag", riff.RiffID); err != nil {
		return h, err
	}
	if h.RiffSize, err = fr.u32("riffSize"); err != nil {
		return h, err
	}
	if h.WaveTag, err = fr.tag("waveTag", riff.WavFormatID); err != nil {
		return h, err
	}
	if h.FmtTag, err = fr.tag("fmtTag", riff.FmtID); err != nil {
		return h, err
	}
	if h.FmtChunkSize, err = fr.u32("fmtChunkSize"); err != nil {
		return h, err
	}
	if h.AudioFormat, err = fr.u16("audioFormat"); err != nil {
		return h, err
	}
	if h.Channels, err = fr.u16("channelCount"); err != nil {
		return h, err
	}
	if h.SampleRate, err = fr.u32("sampleRate"); err != nil {
		return h, err
	}
	if h.SampleRate == 0 && h.AudioFormat == FormatPCM {
		return h, invalidField("sampleRate", "must be greater than zero")
	}
	if h.ByteRate, err = fr.u32("byteRate"); err != nil {
		return h, err
	}
	if h.BlockAlign, err = fr.u16("blockAlign"); err != nil {
		return h, err
	}
	if h.BitsPerSample, err = fr.u16("bitsPerSample"); err != nil {
		return h, err
	}
	if h.DataTag, err = fr.tag("dataTag", riff.DataFormatID); err != nil {
		return h, err
	}
	if h.DataSize, err = fr.u32("dataSize"); err != nil {
		return h, err
	}

	if h.AudioFormat != FormatPCM {
		decoded := h
		return h, &ParseError{
			Kind:   KindUnsupportedFormat,
			Field:  "audioFormat",
			Code:   h.AudioFormat,
			Header: &decoded,
		}
	}

	return h, nil
}

// position reports where r currently is, or 0 when it cannot tell.
func position(r io.Reader) int64 {
	s, ok := r.(io.Seeker)
	if !ok {
		return 0
	}
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return pos
}

// remaining reports how many unread bytes r holds, if it can be known
// without consuming them.
func remaining(r io.Reader) (int64, bool) {
	if l, ok := r.(interface{ Len() int }); ok {
		return int64(l.Len()), true
	}

	s, ok := r.(io.Seeker)
	if !ok {
		return 0, false
	}
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, false
	}
	return end - cur, true
}
