// SPDX-License-Identifier: EPL-2.0

package session

// TrimSlice applies opt to sl, recomputing its audio from the composed
// original. Re-applying the same option yields the same audio.
//
// Trims run outside the structural edit queues; see the package
// documentation for the resulting hazard.
func (s *Session) TrimSlice(sl *Slice, opt TrimOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl.Trim = opt
	sl.Audio = applyTrim(sl.Original, opt)
}

// TrimLayer applies opt to layer and recomposes the owning slice so the
// edit is reflected in the composite. If the owning slice has been
// removed, the trim still applies to the layer itself and the
// recomposition is silently skipped.
func (s *Session) TrimLayer(layer *Layer, opt TrimOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer.Trim = opt
	layer.Audio = applyTrim(layer.Original, opt)

	_, sl := s.findSliceLocked(layer.sliceID)
	if sl == nil {
		s.log.Debug("trim on orphaned layer", "layer", layer.ID)
		return
	}
	s.recomposeLocked(sl)
}
