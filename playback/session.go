// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ik5/wavplay/feed"
	"github.com/ik5/wavplay/wave"
)

// Session ties one feeder to one sink for a single pass over the payload.
type Session struct {
	ID     uuid.UUID
	header wave.Header
	feeder *feed.Feeder
	sink   Sink
	logger *slog.Logger
	done   bool
}

// NewSession returns a session with a fresh ID. The session owns sink and
// closes it when Run returns.
func NewSession(h wave.Header, f *feed.Feeder, sink Sink, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.New()

	return &Session{
		ID:     id,
		header: h,
		feeder: f,
		sink:   sink,
		logger: logger.With("session_id", id.String()),
	}
}

// Run feeds the whole payload to the sink, or stops early when ctx is done.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	if s.done {
		return Stats{}, ErrSessionFinished
	}
	s.done = true

	s.logger.Info("playback started",
		"sample_rate", s.header.SampleRate,
		"channels", s.header.Channels,
		"bits_per_sample", s.header.BitsPerSample,
		"payload_bytes", s.feeder.Len(),
		"buffer_capacity", s.feeder.Capacity(),
		"duration", s.header.Duration(),
	)

	stats, err := Drive(ctx, s.feeder, s.sink)
	if cerr := s.sink.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Info("playback interrupted",
			"chunks", stats.Chunks,
			"bytes", stats.Bytes,
			"position", s.feeder.Position(),
		)
	case err != nil:
		s.logger.Error("playback failed", "error", err, "chunks", stats.Chunks, "bytes", stats.Bytes)
	default:
		s.logger.Info("playback complete", "chunks", stats.Chunks, "bytes", stats.Bytes)
	}

	return stats, err
}
