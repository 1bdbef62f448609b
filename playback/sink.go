// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"

	"github.com/ik5/wavplay/feed"
)

// Sink consumes chunks, standing in for an audio device.
type Sink interface {
	// Write delivers one non-empty chunk. c.Data is only valid during the call.
	Write(ctx context.Context, c feed.Chunk) error
	Close() error
}

// ChunkSource produces chunks until one is marked Final. *feed.Feeder is one.
type ChunkSource interface {
	Next() feed.Chunk
}

// Stats counts what Drive delivered.
type Stats struct {
	Chunks int
	Bytes  int64
}

// Drive pulls chunks from src and hands them to sink until the final chunk
// has been delivered. Cancelling ctx stops it between chunks; the sink is not
// closed.
func Drive(ctx context.Context, src ChunkSource, sink Sink) (Stats, error) {
	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		c := src.Next()
		if c.Bytes > 0 {
			if err := sink.Write(ctx, c); err != nil {
				return stats, fmt.Errorf("playback: sink write: %w", err)
			}
			stats.Chunks++
			stats.Bytes += int64(c.Bytes)
		}

		if c.Final {
			return stats, nil
		}
	}
}

// Discard accepts and counts every chunk.
type Discard struct {
	Stats
}

func (d *Discard) Write(_ context.Context, c feed.Chunk) error {
	d.Chunks++
	d.Bytes += int64(c.Bytes)
	return nil
}

func (d *Discard) Close() error { return nil }
