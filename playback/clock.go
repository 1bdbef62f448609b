// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"time"

	"github.com/ik5/wavplay/feed"
)

// ClockSink forwards chunks to next, then holds each one for its play time
// at the descriptor's rate, the way an output device drains its queue.
type ClockSink struct {
	desc Descriptor
	next Sink
}

// NewClockSink paces deliveries to next. A nil next discards the chunks.
func NewClockSink(d Descriptor, next Sink) *ClockSink {
	if next == nil {
		next = &Discard{}
	}
	return &ClockSink{desc: d, next: next}
}

func (s *ClockSink) Write(ctx context.Context, c feed.Chunk) error {
	if err := s.next.Write(ctx, c); err != nil {
		return err
	}

	d := s.desc.Duration(c.Bytes)
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *ClockSink) Close() error { return s.next.Close() }
