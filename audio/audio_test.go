package audio

import (
	"errors"
	"io"
	"testing"
)

// sliceSource serves a fixed set of interleaved samples.
type sliceSource struct {
	rate     int
	channels int
	samples  []float32
	offset   int
}

func (s *sliceSource) SampleRate() int { return s.rate }
func (s *sliceSource) Channels() int   { return s.channels }
func (s *sliceSource) Close() error    { return nil }

func (s *sliceSource) ReadSamples(dst []float32) (int, error) {
	if s.offset >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.offset:])
	s.offset += n
	if s.offset >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return &sliceSource{rate: 44100, channels: 2, samples: make([]float32, 200)}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_NormalizesExtension(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	// Lookup with a leading dot and mixed case, as produced by
	// filepath.Ext on user-supplied names.
	for _, ext := range []string{".wav", "WAV", ".WaV"} {
		if _, ok := registry.Get(ext); !ok {
			t.Errorf("Registry.Get(%q) failed, want hit", ext)
		}
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestReadAll_CollectsEverySample(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10000)
	for i := range samples {
		samples[i] = float32(i%100) / 100.0
	}

	src := &sliceSource{rate: 8000, channels: 1, samples: samples}
	got, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(got) != len(samples) {
		t.Fatalf("ReadAll() returned %d samples, want %d", len(got), len(samples))
	}
	for i := range got {
		if got[i] != samples[i] {
			t.Fatalf("ReadAll()[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestReadAll_EmptySource(t *testing.T) {
	t.Parallel()

	src := &sliceSource{rate: 8000, channels: 1}
	got, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadAll() returned %d samples, want 0", len(got))
	}
}

// failSource returns an error mid-stream.
type failSource struct {
	reads int
}

var errBroken = errors.New("broken stream")

func (s *failSource) SampleRate() int { return 8000 }
func (s *failSource) Channels() int   { return 1 }
func (s *failSource) Close() error    { return nil }

func (s *failSource) ReadSamples(dst []float32) (int, error) {
	if s.reads > 0 {
		return 0, errBroken
	}
	s.reads++
	return len(dst), nil
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(&failSource{})
	if !errors.Is(err, errBroken) {
		t.Errorf("ReadAll() error = %v, want wrapped errBroken", err)
	}
}
