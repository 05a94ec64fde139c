package clip

import (
	"math"
	"testing"
)

func TestDownmix_MonoPassthrough(t *testing.T) {
	t.Parallel()

	in := []float32{0.5, 0.5, 0.5}
	got := Downmix(in, 1, 8000)

	if got.Frames() != 3 {
		t.Fatalf("Downmix() frames = %d, want 3", got.Frames())
	}
	for i := range got.Samples {
		if got.Samples[i] != 0.5 {
			t.Errorf("Downmix()[%d] = %v, want 0.5", i, got.Samples[i])
		}
	}

	// Mono input is copied, never aliased.
	got.Samples[0] = 99
	if in[0] != 0.5 {
		t.Error("Downmix() aliased its input for mono passthrough")
	}
}

func TestDownmix_StereoToMono(t *testing.T) {
	t.Parallel()

	// Left 0.4, right 0.6 -> average 0.5
	in := []float32{0.4, 0.6, 0.4, 0.6, 0.4, 0.6}
	got := Downmix(in, 2, 8000)

	if got.Frames() != 3 {
		t.Fatalf("Downmix() frames = %d, want 3", got.Frames())
	}
	for i := range got.Samples {
		if math.Abs(float64(got.Samples[i]-0.5)) > 0.001 {
			t.Errorf("Downmix()[%d] = %v, want 0.5", i, got.Samples[i])
		}
	}
}

func TestDownmix_QuadToMono(t *testing.T) {
	t.Parallel()

	// Channels 0.0, 0.1, 0.2, 0.3 -> average 0.15
	in := []float32{0.0, 0.1, 0.2, 0.3, 0.0, 0.1, 0.2, 0.3}
	got := Downmix(in, 4, 8000)

	if got.Frames() != 2 {
		t.Fatalf("Downmix() frames = %d, want 2", got.Frames())
	}
	for i := range got.Samples {
		if math.Abs(float64(got.Samples[i]-0.15)) > 0.001 {
			t.Errorf("Downmix()[%d] = %v, want 0.15", i, got.Samples[i])
		}
	}
}

func TestDownmix_GenericChannelCount(t *testing.T) {
	t.Parallel()

	// 3 channels: 0.3, 0.6, 0.9 -> average 0.6
	in := []float32{0.3, 0.6, 0.9, 0.3, 0.6, 0.9}
	got := Downmix(in, 3, 8000)

	if got.Frames() != 2 {
		t.Fatalf("Downmix() frames = %d, want 2", got.Frames())
	}
	for i := range got.Samples {
		if math.Abs(float64(got.Samples[i]-0.6)) > 0.001 {
			t.Errorf("Downmix()[%d] = %v, want 0.6", i, got.Samples[i])
		}
	}
}

func TestDownmix_PartialTrailingFrame(t *testing.T) {
	t.Parallel()

	// 5 samples at 2 channels: the dangling half frame is dropped.
	in := []float32{0.2, 0.4, 0.2, 0.4, 0.2}
	got := Downmix(in, 2, 8000)

	if got.Frames() != 2 {
		t.Errorf("Downmix() frames = %d, want 2", got.Frames())
	}
}
