// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ik5/wavplay/feed"
	"github.com/ik5/wavplay/wave"
)

func TestSession_Run(t *testing.T) {
	t.Parallel()

	h := wave.NewHeader(8000, 1, 8, 100)
	f, err := feed.NewFromData(ramp(100), 30)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	sink := &recordSink{}

	s := NewSession(h, f, sink, logger)
	if s.ID == uuid.Nil {
		t.Error("NewSession() left the ID unset")
	}

	stats, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Chunks != 4 || stats.Bytes != 100 {
		t.Errorf("Run() stats = %+v, want 4 chunks, 100 bytes", stats)
	}
	if !sink.closed {
		t.Error("Run() did not close the sink")
	}

	out := logs.String()
	for _, want := range []string{"playback started", "playback complete", "session_id=" + s.ID.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("logs missing %q:\n%s", want, out)
		}
	}

	if _, err := s.Run(context.Background()); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("second Run() error = %v, want ErrSessionFinished", err)
	}
}

func TestSession_Interrupted(t *testing.T) {
	t.Parallel()

	f, err := feed.NewFromData(ramp(100), 30)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	s := NewSession(wave.NewHeader(8000, 1, 8, 100), f, &recordSink{}, slog.New(slog.NewTextHandler(&logs, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if !strings.Contains(logs.String(), "playback interrupted") {
		t.Errorf("logs missing interruption:\n%s", logs.String())
	}
}

func TestSession_NilLogger(t *testing.T) {
	t.Parallel()

	f, err := feed.NewFromData(ramp(10), 4)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSession(wave.NewHeader(8000, 1, 8, 10), f, &Discard{}, nil)
	if _, err := s.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestSessions_HaveDistinctIDs(t *testing.T) {
	t.Parallel()

	f1, _ := feed.NewFromData(nil, 1)
	f2, _ := feed.NewFromData(nil, 1)
	h := wave.NewHeader(8000, 1, 8, 0)

	a := NewSession(h, f1, &Discard{}, nil)
	b := NewSession(h, f2, &Discard{}, nil)

	if a.ID == b.ID {
		t.Errorf("two sessions share ID %s", a.ID)
	}
}
