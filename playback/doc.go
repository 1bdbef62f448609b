// SPDX-License-Identifier: EPL-2.0

// Package playback drives a feed.Feeder into a sink.
//
// A Sink stands in for the output device. The package ships three:
//   - FileSink re-encodes the stream into a WAV file with go-audio/wav
//   - ClockSink holds every chunk for its play time, like a device queue
//   - Discard only counts
//
// Drive is the pull loop. Session wraps it with an ID, logging and sink
// cleanup:
//
//	desc, _ := playback.DescriptorFor(h)
//	f, _ := feed.NewFromData(data, 4096)
//	s := playback.NewSession(h, f, playback.NewClockSink(desc, nil), logger)
//	stats, err := s.Run(ctx)
//
// Stopping playback is done by cancelling ctx; the feeder itself has no
// notion of cancellation.
package playback
