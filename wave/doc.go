// SPDX-License-Identifier: EPL-2.0

// Package wave decodes and encodes the canonical RIFF/WAVE header.
//
// Only the canonical 44-byte layout is understood: a RIFF chunk holding a
// 16-byte "fmt " sub-chunk immediately followed by the "data" sub-chunk.
// Files with LIST, fact or extensible format chunks are rejected rather than
// scanned, and only linear PCM (format code 1) is accepted.
//
// # Parsing
//
// Parse reads the header fields strictly in file order and reports where the
// sample bytes begin. It never copies the samples:
//
//	f, _ := os.Open("audio.wav")
//	h, p, err := wave.Parse(f)
//	if err != nil {
//	    // *wave.ParseError
//	}
//	data, err := wave.ReadPayload(f, p, 64<<20)
//
// Parsing is all-or-nothing: on error the zero Header is returned.
//
// # Errors
//
// Every parse failure is a *ParseError whose Kind is one of:
//   - KindTruncated: the input ended inside a field or the payload
//   - KindBadTag: RIFF, WAVE, "fmt " or data did not match
//   - KindUnsupportedFormat: audio format code other than 1
//   - KindInvalidField: a zero sample rate, or a Validate check
//
// Each kind also matches a sentinel through errors.Is:
//
//	if errors.Is(err, wave.ErrBadTag) {
//	    fmt.Println("not a WAVE file")
//	}
//
// # Validation
//
// Parse does not cross-check byte rate or block align. Call Validate for the
// stricter checks when a file should be rejected for disagreeing fields.
//
// # Writing
//
// NewHeader builds a consistent PCM header, and Encode or WritePCM serialize
// it together with the samples:
//
//	pcm := make([]byte, 16000)
//	wave.WritePCM(file, 8000, 1, 16, pcm)
package wave
