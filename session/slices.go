// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"

	"github.com/google/uuid"
)

// AddSlice loads source data and appends a new slice built from it,
// containing a single layer that is a copy of the loaded record.
//
// Admission checks run against the state before the load: a full slice
// list, or an aggregate duration already over the ceiling, rejects the
// source without decoding it. The ceiling check does not count the
// candidate's own duration.
func (s *Session) AddSlice(ctx context.Context, name string, data []byte) (*Slice, error) {
	release, err := s.sliceQ.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.RLock()
	count := len(s.slices)
	total := s.totalDurationLocked()
	s.mu.RUnlock()

	if count >= s.cfg.MaxSlices {
		s.notify.Notify("max slices reached", Warning, notifyTimeout)
		return nil, ErrMaxSlices
	}
	if total > s.cfg.MaxDuration {
		s.notify.Notify("total duration exceeded", Warning, notifyTimeout)
		return nil, ErrDurationExceeded
	}

	file, err := s.loadSource(name, data)
	if err != nil {
		s.notifyLoadErr(err)
		return nil, err
	}

	sl := &Slice{AudioFile: file}
	layer := &Layer{AudioFile: file, sliceID: sl.ID}
	layer.ID = uuid.New()
	sl.Layers = []*Layer{layer}

	s.mu.Lock()
	s.slices = append(s.slices, sl)
	s.mu.Unlock()

	s.log.Info("slice added",
		"slice", sl.ID,
		"name", sl.Name,
		"duration", sl.Audio.Duration())
	return sl, nil
}

// RemoveSlice deletes sl from the session by identity. Layer
// back-references into the removed slice go stale; later trims on such
// layers quietly skip recomposition.
func (s *Session) RemoveSlice(ctx context.Context, sl *Slice) error {
	release, err := s.sliceQ.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	i, found := s.findSliceLocked(sl.ID)
	if found == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.slices = append(s.slices[:i], s.slices[i+1:]...)
	if s.editSlice == sl.ID {
		s.editSlice = uuid.Nil
	}
	s.mu.Unlock()

	s.log.Info("slice removed", "slice", sl.ID, "name", sl.Name)
	return nil
}

// MoveSliceUp swaps sl with its predecessor. Already first is a no-op,
// not an error.
func (s *Session) MoveSliceUp(ctx context.Context, sl *Slice) error {
	return s.moveSlice(ctx, sl, -1)
}

// MoveSliceDown swaps sl with its successor. Already last is a no-op,
// not an error.
func (s *Session) MoveSliceDown(ctx context.Context, sl *Slice) error {
	return s.moveSlice(ctx, sl, +1)
}

func (s *Session) moveSlice(ctx context.Context, sl *Slice, dir int) error {
	release, err := s.sliceQ.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, found := s.findSliceLocked(sl.ID)
	if found == nil {
		return ErrNotFound
	}

	j := i + dir
	if j < 0 || j >= len(s.slices) {
		return nil // clamp at the ends
	}

	s.slices[i], s.slices[j] = s.slices[j], s.slices[i]
	return nil
}
