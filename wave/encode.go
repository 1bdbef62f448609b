// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"fmt"
	"io"
)

// AppendHeader appends the 44-byte serialization of h to dst. Fields are
// written as given; nothing is recomputed or checked.
func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.RiffTag[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, h.RiffSize)
	dst = append(dst, h.WaveTag[:]...)

	dst = append(dst, h.FmtTag[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, h.FmtChunkSize)
	dst = binary.LittleEndian.AppendUint16(dst, h.AudioFormat)
	dst = binary.LittleEndian.AppendUint16(dst, h.Channels)
	dst = binary.LittleEndian.AppendUint32(dst, h.SampleRate)
	dst = binary.LittleEndian.AppendUint32(dst, h.ByteRate)
	dst = binary.LittleEndian.AppendUint16(dst, h.BlockAlign)
	dst = binary.LittleEndian.AppendUint16(dst, h.BitsPerSample)

	dst = append(dst, h.DataTag[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, h.DataSize)

	return dst
}

// Encode writes h followed by pcm.
func Encode(w io.Writer, h Header, pcm []byte) error {
	header := AppendHeader(make([]byte, 0, HeaderSize), h)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wave: writing header: %w", err)
	}

	if len(pcm) == 0 {
		return nil
	}

	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("wave: writing data: %w", err)
	}

	return nil
}

// WritePCM writes a canonical PCM file around the raw little-endian samples in pcm.
func WritePCM(w io.Writer, sampleRate, channels, bitsPerSample int, pcm []byte) error {
	return Encode(w, NewHeader(sampleRate, channels, bitsPerSample, uint32(len(pcm))), pcm)
}
