// SPDX-License-Identifier: EPL-2.0

package wavplay_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wavplay"
	"github.com/ik5/wavplay/internal/wavetest"
	"github.com/ik5/wavplay/transcode"
	"github.com/ik5/wavplay/wave"
)

// rawRenderer wraps headerless 8 kHz mono 8-bit samples in a WAVE header.
type rawRenderer struct{}

func (rawRenderer) Render(r io.Reader) ([]byte, error) {
	pcm, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return wavetest.File(8000, 1, 8, pcm), nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	pcm := wavetest.Ramp(1000)
	track, err := wavplay.Load(bytes.NewReader(wavetest.File(22050, 2, 16, pcm)), wave.NoLimit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if track.Header.SampleRate != 22050 || track.Header.Channels != 2 {
		t.Errorf("Header = %+v", track.Header)
	}
	if track.Payload.Offset != wave.HeaderSize || track.Payload.Length != 1000 {
		t.Errorf("Payload = %+v", track.Payload)
	}
	if !bytes.Equal(track.Data, pcm) {
		t.Error("Data differs from the payload")
	}

	desc, err := track.Descriptor()
	if err != nil {
		t.Fatal(err)
	}
	if desc.BytesPerFrame != 4 {
		t.Errorf("Descriptor().BytesPerFrame = %d, want 4", desc.BytesPerFrame)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	file := wavetest.File(8000, 1, 8, wavetest.Ramp(100))

	_, err := wavplay.Load(bytes.NewReader(file), 50)
	if !errors.Is(err, wave.ErrPayloadTooLarge) {
		t.Errorf("Load() over limit error = %v, want ErrPayloadTooLarge", err)
	}

	_, err = wavplay.Load(bytes.NewReader(file[:60]), wave.NoLimit)
	if !errors.Is(err, wave.ErrTruncated) {
		t.Errorf("Load() short file error = %v, want ErrTruncated", err)
	}

	_, err = wavplay.Load(bytes.NewReader(wavetest.WithTag(file, wavetest.WaveTagOffset, "AVI ")), wave.NoLimit)
	if !errors.Is(err, wave.ErrBadTag) {
		t.Errorf("Load() AVI error = %v, want ErrBadTag", err)
	}
}

func TestTrack_FeederIsFresh(t *testing.T) {
	t.Parallel()

	track, err := wavplay.Load(bytes.NewReader(wavetest.File(8000, 1, 8, wavetest.Ramp(16))), wave.NoLimit)
	if err != nil {
		t.Fatal(err)
	}

	first, err := track.Feeder(10)
	if err != nil {
		t.Fatal(err)
	}
	for !first.Next().Final {
	}

	second, err := track.Feeder(10)
	if err != nil {
		t.Fatal(err)
	}
	if c := second.Next(); c.Bytes != 10 || c.Final {
		t.Errorf("second feeder first chunk = %d bytes, final=%v", c.Bytes, c.Final)
	}

	if _, err := track.Feeder(0); err == nil {
		t.Error("Feeder(0) error = nil")
	}
}

func TestOpen_Wav(t *testing.T) {
	t.Parallel()

	pcm := wavetest.Ramp(300)
	path := writeFile(t, "tone.WAV", wavetest.File(11025, 1, 16, pcm))

	track, err := wavplay.Open(path, nil, wave.NoLimit)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(track.Data, pcm) {
		t.Error("Data differs from the payload")
	}
}

func TestOpen_TruncatedFile(t *testing.T) {
	t.Parallel()

	file := wavetest.File(8000, 1, 8, wavetest.Ramp(100))
	path := writeFile(t, "short.wav", file[:len(file)-10])

	_, err := wavplay.Open(path, nil, wave.NoLimit)

	var perr *wave.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Open() error = %v, want *wave.ParseError", err)
	}
	if perr.Kind != wave.KindTruncated || perr.BytesExpected != 100 || perr.BytesAvailable != 90 {
		t.Errorf("ParseError = %+v", perr)
	}
}

func TestOpen_Renderer(t *testing.T) {
	t.Parallel()

	reg := transcode.NewRegistry()
	reg.Register("raw", rawRenderer{})

	pcm := wavetest.Ramp(64)
	path := writeFile(t, "samples.raw", pcm)

	track, err := wavplay.Open(path, reg, wave.NoLimit)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if track.Header.SampleRate != 8000 || !bytes.Equal(track.Data, pcm) {
		t.Errorf("Open() = %+v", track.Header)
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	if _, err := wavplay.Open(filepath.Join(t.TempDir(), "missing.wav"), nil, wave.NoLimit); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want os.ErrNotExist", err)
	}

	path := writeFile(t, "song.flac", []byte("fLaC"))
	if _, err := wavplay.Open(path, nil, wave.NoLimit); !errors.Is(err, transcode.ErrUnsupportedExtension) {
		t.Errorf("Open(flac) error = %v, want ErrUnsupportedExtension", err)
	}
}
