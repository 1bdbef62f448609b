// SPDX-License-Identifier: EPL-2.0

// Package feed streams a WAVE payload to a sink in fixed-size chunks.
//
// A Feeder keeps a cursor over the payload. Each call to Next or Fill copies
// min(capacity, remaining) bytes, advances the cursor and reports whether the
// payload is now exhausted:
//
//	f, _ := feed.New(file, payload, 4096)
//	for {
//	    c := f.Next()
//	    device.Enqueue(c.Data)
//	    if c.Final {
//	        break
//	    }
//	}
//
// The same loop is available as an iterator:
//
//	for c := range f.Chunks() {
//	    device.Enqueue(c.Data)
//	}
//
// Exhaustion is terminal, not an error: once a chunk is marked Final, every
// later call returns an empty Final chunk.
//
// A Feeder has no locking. It belongs to one playback session and callers
// must serialize calls, including from audio driver callback threads.
package feed
