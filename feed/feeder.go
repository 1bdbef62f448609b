// SPDX-License-Identifier: EPL-2.0

package feed

import (
	"fmt"
	"iter"
	"math"

	"github.com/ik5/wavplay/wave"
)

// Chunk is one delivery to a sink.
type Chunk struct {
	// Data holds the Bytes copied for this delivery. For Next it aliases the
	// feeder's buffer and is overwritten by the following call.
	Data []byte
	// Bytes is len(Data), at most the feeder capacity.
	Bytes int
	// Final is set once the payload is exhausted, including on the delivery
	// that carries the last bytes.
	Final bool
}

// Feeder hands out a payload in pieces of at most Capacity bytes.
//
// A Feeder belongs to a single playback session and is not safe for
// concurrent use; callers driving it from a device callback must serialize
// calls themselves.
type Feeder struct {
	data     []byte
	capacity int
	pos      int
	buf      []byte
}

// New returns a feeder over the payload p located inside src. src must stay
// alive and unmodified while the feeder is in use.
func New(src []byte, p wave.Payload, capacity int) (*Feeder, error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}

	data, err := p.Slice(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadOutOfRange, err)
	}

	return &Feeder{data: data, capacity: capacity}, nil
}

// NewFromData returns a feeder over an already materialized payload, such as
// the result of wave.ReadPayload.
func NewFromData(data []byte, capacity int) (*Feeder, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadOutOfRange, len(data))
	}
	return New(data, wave.Payload{Offset: 0, Length: uint32(len(data))}, capacity)
}

// Capacity is the largest delivery the feeder makes.
func (f *Feeder) Capacity() int { return f.capacity }

// Len is the payload length.
func (f *Feeder) Len() uint32 { return uint32(len(f.data)) }

// Position is the number of bytes already delivered.
func (f *Feeder) Position() uint32 { return uint32(f.pos) }

// Remaining is the number of bytes not yet delivered.
func (f *Feeder) Remaining() uint32 { return uint32(len(f.data) - f.pos) }

// Done reports whether the payload is exhausted.
func (f *Feeder) Done() bool { return f.pos >= len(f.data) }

// Next copies the next piece of the payload into the feeder's own buffer.
// After the final chunk every call returns an empty final chunk.
func (f *Feeder) Next() Chunk {
	if f.buf == nil {
		f.buf = make([]byte, f.capacity)
	}
	return f.fill(f.buf)
}

// Fill copies the next piece of the payload into dst, which must hold at
// least Capacity bytes. A short dst is rejected without moving the cursor.
func (f *Feeder) Fill(dst []byte) (Chunk, error) {
	if len(dst) < f.capacity {
		return Chunk{}, fmt.Errorf("%w: %d bytes, capacity %d", ErrShortBuffer, len(dst), f.capacity)
	}
	return f.fill(dst), nil
}

func (f *Feeder) fill(dst []byte) Chunk {
	n := copy(dst[:min(f.capacity, len(f.data)-f.pos)], f.data[f.pos:])
	f.pos += n

	return Chunk{
		Data:  dst[:n],
		Bytes: n,
		Final: f.pos >= len(f.data),
	}
}

// Chunks yields deliveries from Next until the final one. On an exhausted
// feeder it yields a single empty final chunk.
func (f *Feeder) Chunks() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for {
			c := f.Next()
			if !yield(c) || c.Final {
				return
			}
		}
	}
}
