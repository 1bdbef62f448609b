// SPDX-License-Identifier: EPL-2.0

package wave

import "math"

const (
	sineToneHz       = 440.0
	sineModulationHz = 0.5
)

// RewriteSine overwrites data with a 440 Hz tone whose volume swells at
// 0.5 Hz. Each byte is treated as one sample at h.SampleRate and scaled to a
// quiet unsigned 8-bit level. It is a demonstration aid for checking that a
// sink plays anything at all, not a synthesizer.
func RewriteSine(h Header, data []byte) {
	if h.SampleRate == 0 {
		return
	}
	rate := float64(h.SampleRate)

	for i := range data {
		t := float64(i) / rate
		volume := 0.5 * (2.0 + math.Sin(2*math.Pi*sineModulationHz*t))
		s := volume * math.Sin(2*math.Pi*sineToneHz*t)
		data[i] = byte(max(10.0*(s+1.0), 0))
	}
}
