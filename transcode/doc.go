// SPDX-License-Identifier: EPL-2.0

// Package transcode renders non-WAVE audio files into canonical PCM WAVE
// images so they can go through the same parse and feed path as .wav input.
//
// Supported inputs:
//   - WAV: passed through unchanged
//   - MP3 via github.com/hajimehoshi/go-mp3 (always 16-bit stereo)
//   - Ogg Vorbis via github.com/jfreymuth/oggvorbis (rendered as 16-bit)
//   - AIFF via github.com/go-audio/aiff (8, 16, 24 or 32-bit, kept as is)
//
// Renderers are looked up by extension:
//
//	reg := transcode.DefaultRegistry()
//	img, err := reg.Render(file, transcode.Ext(path))
//	h, p, err := wave.ParseBytes(img)
//
// Every renderer decodes the whole input into memory.
package transcode
