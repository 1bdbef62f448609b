// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ik5/wavplay/feed"
)

func TestClockSink_Paces(t *testing.T) {
	t.Parallel()

	// 8000 one-byte frames per second: 80 bytes last 10ms
	desc := Descriptor{SampleRate: 8000, Channels: 1, BitsPerSample: 8, BytesPerFrame: 1}
	rec := &recordSink{}
	sink := NewClockSink(desc, rec)

	f, err := feed.NewFromData(ramp(240), 80)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if _, err := Drive(context.Background(), f, sink); err != nil {
		t.Fatalf("Drive() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Drive() took %v, want at least 30ms", elapsed)
	}
	if len(rec.chunks) != 3 {
		t.Errorf("next sink got %d chunks, want 3", len(rec.chunks))
	}

	if err := sink.Close(); err != nil || !rec.closed {
		t.Errorf("Close() error = %v, closed = %v", err, rec.closed)
	}
}

func TestClockSink_Cancel(t *testing.T) {
	t.Parallel()

	desc := Descriptor{SampleRate: 1, Channels: 1, BitsPerSample: 8, BytesPerFrame: 1}
	sink := NewClockSink(desc, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// one byte at 1 Hz would hold for a full second
	err := sink.Write(ctx, feed.Chunk{Data: []byte{0}, Bytes: 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Write() error = %v, want context.DeadlineExceeded", err)
	}
}
