// SPDX-License-Identifier: EPL-2.0

// Package wavplay reads canonical PCM WAVE files and streams their samples to
// a playback sink in fixed-size chunks.
//
// The work is split across subpackages:
//   - wave parses and writes the canonical 44-byte RIFF/WAVE header
//   - feed hands out the payload in chunks of a fixed capacity
//   - playback drives a feeder into a sink (file, clock, discard)
//   - transcode renders MP3, Ogg Vorbis and AIFF into PCM WAVE
//
// # Quick Start
//
//	file, _ := os.Open("audio.wav")
//	track, err := wavplay.Load(file, 64<<20)
//	if err != nil {
//	    // *wave.ParseError or wave.ErrPayloadTooLarge
//	}
//
//	f, _ := track.Feeder(4096)
//	for c := range f.Chunks() {
//	    device.Enqueue(c.Data)
//	}
//
// # Other Formats
//
// Open picks a renderer by file extension, so an .mp3 or .ogg goes through
// the same parser as a .wav:
//
//	track, err := wavplay.Open("song.mp3", nil, wave.NoLimit)
//
// # Playback
//
//	desc, _ := track.Descriptor()
//	f, _ := track.Feeder(4096)
//	s := playback.NewSession(track.Header, f, playback.NewClockSink(desc, nil), logger)
//	stats, err := s.Run(ctx)
//
// The parser and the feeder are synchronous and never log. A feeder belongs
// to one session and must not be shared between goroutines.
package wavplay
