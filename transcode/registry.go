// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer turns an encoded audio file into a canonical PCM WAVE image.
type Renderer interface {
	Render(r io.Reader) ([]byte, error)
}

// Registry maps file extensions (without the dot, lower case) to renderers.
type Registry struct {
	renderers map[string]Renderer

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		mtx:       &sync.Mutex{},
	}
}

// DefaultRegistry knows every format this package can decode.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("wav", WAV{})
	reg.Register("wave", WAV{})
	reg.Register("mp3", MP3{})
	reg.Register("ogg", Vorbis{})
	reg.Register("aiff", AIFF{})
	reg.Register("aif", AIFF{})
	return reg
}

func (r *Registry) Register(ext string, d Renderer) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.renderers[strings.ToLower(ext)] = d
}

func (r *Registry) Get(ext string) (Renderer, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.renderers[strings.ToLower(ext)]
	return d, ok
}

// Render picks the renderer for ext and runs it over src.
func (r *Registry) Render(src io.Reader, ext string) ([]byte, error) {
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	out, err := d.Render(src)
	if err != nil {
		return nil, fmt.Errorf("transcode %s: %w", ext, err)
	}
	return out, nil
}

// Ext returns the lower-case extension of path without the leading dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
