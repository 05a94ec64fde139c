// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

func TestAddLayer_Recomposes(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, nil)
	ctx := context.Background()

	sl, err := s.AddSlice(ctx, "kick.mock", nil)
	if err != nil {
		t.Fatalf("AddSlice() error = %v", err)
	}

	layer, err := s.AddLayer(ctx, sl, "snare.mock", nil)
	if err != nil {
		t.Fatalf("AddLayer() error = %v", err)
	}

	if len(sl.Layers) != 2 {
		t.Fatalf("len(Layers) = %d, want 2", len(sl.Layers))
	}
	if layer.SliceID() != sl.ID {
		t.Error("layer does not point back at its slice")
	}
	if sl.Name != "kick + snare" {
		t.Errorf("Name = %q, want %q", sl.Name, "kick + snare")
	}

	// Both mock layers are constant 0.5, so the composite sums to 1.0.
	for i, v := range sl.Original.Samples {
		if math.Abs(float64(v)-1.0) > 1e-6 {
			t.Fatalf("Original sample %d = %v, want 1.0", i, v)
		}
	}
}

// Layers reinforce each other: the sum is not averaged and may exceed
// unity before serialization clamps it.
func TestAddLayer_SumExceedsUnity(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, nil)
	ctx := context.Background()

	sl, _ := s.AddSlice(ctx, "a.mock", nil)
	s.AddLayer(ctx, sl, "b.mock", nil)
	s.AddLayer(ctx, sl, "c.mock", nil)

	if got := sl.Original.Samples[0]; math.Abs(float64(got)-1.5) > 1e-6 {
		t.Errorf("three 0.5 layers sum to %v, want 1.5", got)
	}
}

func TestAddLayer_MaxLayers(t *testing.T) {
	t.Parallel()

	s, notifier := newTestSession(t, func(c *Config) { c.MaxLayers = 2 })
	ctx := context.Background()

	sl, _ := s.AddSlice(ctx, "kick.mock", nil)
	if _, err := s.AddLayer(ctx, sl, "snare.mock", nil); err != nil {
		t.Fatalf("AddLayer() error = %v", err)
	}

	_, err := s.AddLayer(ctx, sl, "hat.mock", nil)
	if !errors.Is(err, ErrMaxLayers) {
		t.Fatalf("AddLayer() error = %v, want ErrMaxLayers", err)
	}
	if got := notifier.last(); got != "max layers reached" {
		t.Errorf("notification = %q, want %q", got, "max layers reached")
	}
	if len(sl.Layers) != 2 {
		t.Errorf("len(Layers) = %d, want 2 after rejection", len(sl.Layers))
	}
}

func TestRemoveLayer(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, nil)
	ctx := context.Background()

	sl, _ := s.AddSlice(ctx, "kick.mock", nil)
	layer, _ := s.AddLayer(ctx, sl, "snare.mock", nil)

	if err := s.RemoveLayer(ctx, sl, layer); err != nil {
		t.Fatalf("RemoveLayer() error = %v", err)
	}

	if len(sl.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(sl.Layers))
	}
	if sl.Name != "kick" {
		t.Errorf("Name = %q, want %q after recompose", sl.Name, "kick")
	}
	if got := sl.Original.Samples[0]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("Original sample = %v, want 0.5 after removal", got)
	}

	if err := s.RemoveLayer(ctx, sl, layer); !errors.Is(err, ErrMinLayers) {
		t.Errorf("RemoveLayer() on single-layer slice error = %v, want ErrMinLayers", err)
	}
}

func TestRemoveLayer_LastLayerRejected(t *testing.T) {
	t.Parallel()

	s, notifier := newTestSession(t, nil)
	ctx := context.Background()

	sl, _ := s.AddSlice(ctx, "kick.mock", nil)

	err := s.RemoveLayer(ctx, sl, sl.Layers[0])
	if !errors.Is(err, ErrMinLayers) {
		t.Fatalf("RemoveLayer() error = %v, want ErrMinLayers", err)
	}
	if got := notifier.last(); got != "must have at least one layer" {
		t.Errorf("notification = %q, want %q", got, "must have at least one layer")
	}
	if len(sl.Layers) != 1 {
		t.Errorf("len(Layers) = %d, want 1 (nothing mutated)", len(sl.Layers))
	}
}

func TestRemoveLayer_NotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, nil)
	ctx := context.Background()

	sl, _ := s.AddSlice(ctx, "kick.mock", nil)
	s.AddLayer(ctx, sl, "snare.mock", nil)

	other, _ := s.AddSlice(ctx, "hat.mock", nil)

	err := s.RemoveLayer(ctx, sl, other.Layers[0])
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveLayer() error = %v, want ErrNotFound", err)
	}
}

// Structural layer edits across goroutines serialize on one queue; every
// admission must land.
func TestAddLayer_Concurrent(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, func(c *Config) { c.MaxLayers = 12 })
	ctx := context.Background()

	sl, err := s.AddSlice(ctx, "kick.mock", nil)
	if err != nil {
		t.Fatalf("AddSlice() error = %v", err)
	}

	const adds = 8
	var wg sync.WaitGroup
	for range adds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddLayer(ctx, sl, "snare.mock", nil); err != nil {
				t.Errorf("AddLayer() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if len(sl.Layers) != adds+1 {
		t.Errorf("len(Layers) = %d, want %d", len(sl.Layers), adds+1)
	}

	want := 0.5 * float64(adds+1)
	if got := float64(sl.Original.Samples[0]); math.Abs(got-want) > 1e-5 {
		t.Errorf("composite sample = %v, want %v", got, want)
	}
}
