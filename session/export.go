// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"fmt"

	"github.com/tapir-audio/ptislicer/clip"
	"github.com/tapir-audio/ptislicer/pti"
)

// ExportPTI builds a beat-sliced instrument from the current slice
// order under the given instrument name. The slice queue is held while
// the order is captured so a concurrent structural edit cannot reorder
// the kit mid-export.
func (s *Session) ExportPTI(ctx context.Context, name string) ([]byte, error) {
	release, err := s.sliceQ.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.RLock()
	clips := make([]*clip.Clip, len(s.slices))
	for i, sl := range s.slices {
		clips[i] = sl.Audio
	}
	s.mu.RUnlock()

	if len(clips) == 0 {
		return nil, ErrNoSlices
	}

	buf, err := pti.BuildBeatSliced(clips, name)
	if err != nil {
		return nil, fmt.Errorf("building instrument: %w", err)
	}

	s.log.Info("instrument exported", "name", name, "slices", len(clips), "bytes", len(buf))
	return buf, nil
}
