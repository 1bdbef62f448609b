// SPDX-License-Identifier: EPL-2.0

package wavplay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavplay/feed"
	"github.com/ik5/wavplay/playback"
	"github.com/ik5/wavplay/transcode"
	"github.com/ik5/wavplay/wave"
)

// Track is a parsed WAVE file with its payload in memory.
type Track struct {
	Header  wave.Header
	Payload wave.Payload
	// Data holds exactly Payload.Length bytes.
	Data []byte
}

// Load parses the header from r and reads the payload, refusing payloads
// larger than maxPayload bytes (wave.NoLimit disables the check).
func Load(r io.Reader, maxPayload uint32) (*Track, error) {
	h, p, err := wave.Parse(r)
	if err != nil {
		return nil, err
	}

	data, err := wave.ReadPayload(r, p, maxPayload)
	if err != nil {
		return nil, err
	}

	return &Track{Header: h, Payload: p, Data: data}, nil
}

// Open loads the file at path. Files that are not WAVE are first rendered to
// PCM WAVE by the renderer registered for their extension.
func Open(path string, reg *transcode.Registry, maxPayload uint32) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	ext := transcode.Ext(path)
	if ext == "wav" || ext == "wave" || ext == "" {
		return Load(f, maxPayload)
	}

	if reg == nil {
		reg = transcode.DefaultRegistry()
	}
	img, err := reg.Render(f, ext)
	if err != nil {
		return nil, err
	}

	return Load(bytes.NewReader(img), maxPayload)
}

// Feeder returns a new feeder over the track's payload. Each playback
// session needs its own.
func (t *Track) Feeder(capacity int) (*feed.Feeder, error) {
	return feed.NewFromData(t.Data, capacity)
}

// Descriptor returns the device format for the track.
func (t *Track) Descriptor() (playback.Descriptor, error) {
	return playback.DescriptorFor(t.Header)
}
