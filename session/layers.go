// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"strings"

	"github.com/tapir-audio/ptislicer/clip"
)

// AddLayer loads source data and appends it to sl as a new layer, then
// recomposes the slice inside the same critical section. Layer edits
// across all slices share one queue, so two structural edits can never
// race the same recomposition.
func (s *Session) AddLayer(ctx context.Context, sl *Slice, name string, data []byte) (*Layer, error) {
	release, err := s.layerQ.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.RLock()
	count := len(sl.Layers)
	s.mu.RUnlock()

	if count >= s.cfg.MaxLayers {
		s.notify.Notify("max layers reached", Warning, notifyTimeout)
		return nil, ErrMaxLayers
	}

	file, err := s.loadSource(name, data)
	if err != nil {
		s.notifyLoadErr(err)
		return nil, err
	}

	layer := &Layer{AudioFile: file, sliceID: sl.ID}

	s.mu.Lock()
	sl.Layers = append(sl.Layers, layer)
	s.recomposeLocked(sl)
	s.mu.Unlock()

	s.log.Info("layer added",
		"slice", sl.ID,
		"layer", layer.ID,
		"layers", len(sl.Layers))
	return layer, nil
}

// RemoveLayer removes layer from sl and recomposes. A slice always
// keeps at least one layer; dropping the last one is rejected with
// nothing mutated.
func (s *Session) RemoveLayer(ctx context.Context, sl *Slice, layer *Layer) error {
	release, err := s.layerQ.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	if len(sl.Layers) <= 1 {
		s.mu.Unlock()
		s.notify.Notify("must have at least one layer", Warning, notifyTimeout)
		return ErrMinLayers
	}

	i := -1
	for k, l := range sl.Layers {
		if l.ID == layer.ID {
			i = k
			break
		}
	}
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	sl.Layers = append(sl.Layers[:i], sl.Layers[i+1:]...)
	s.recomposeLocked(sl)
	s.mu.Unlock()

	s.log.Info("layer removed", "slice", sl.ID, "layer", layer.ID)
	return nil
}

// recomposeLocked rebuilds sl's composite from its current layers: the
// original becomes the sample-wise sum of the layers' trimmed audio
// (layers reinforce each other, they are not averaged), the active
// audio re-applies the slice's own trim, and the display name is the
// ordered join of the layer names. Runs after every structural change.
// Callers hold s.mu.
func (s *Session) recomposeLocked(sl *Slice) {
	clips := make([]*clip.Clip, len(sl.Layers))
	names := make([]string, len(sl.Layers))
	for i, l := range sl.Layers {
		clips[i] = l.Audio
		names[i] = l.Name
	}

	sl.Original = clip.Sum(clips...)
	sl.Audio = applyTrim(sl.Original, sl.Trim)
	sl.Name = strings.Join(names, " + ")
}
