// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/google/uuid"
	"github.com/tapir-audio/ptislicer/clip"
)

// TrimOption selects which edges of a recording have silence removed.
type TrimOption int

const (
	TrimNone TrimOption = iota
	TrimStart
	TrimEnd
	TrimBoth
)

// AudioFile is a named recording with its trim state. Original is the
// composed clip before trimming; Audio is Original with Trim applied
// and is what playback and export consume. Clips are immutable, so
// recomputing Audio replaces the pointer rather than editing samples.
type AudioFile struct {
	ID       uuid.UUID
	Name     string
	Original *clip.Clip
	Audio    *clip.Clip
	Trim     TrimOption
}

// Layer is one contributing recording inside a slice. It refers to its
// owning slice by id only; the slice owns the layer, never the other
// way around, and the id may no longer resolve once the slice has been
// removed.
type Layer struct {
	AudioFile

	sliceID uuid.UUID
}

// SliceID returns the id of the owning slice. Resolving it against the
// session may come up empty.
func (l *Layer) SliceID() uuid.UUID { return l.sliceID }

// Slice is a named, orderable unit of the exported instrument, composed
// from 1 up to Config.MaxLayers layers. Its Original is always the
// sample-wise sum of its layers' trimmed audio.
type Slice struct {
	AudioFile

	Layers []*Layer
}

func newAudioFile(name string, c *clip.Clip) AudioFile {
	return AudioFile{
		ID:       uuid.New(),
		Name:     name,
		Original: c,
		Audio:    c,
		Trim:     TrimNone,
	}
}

func applyTrim(c *clip.Clip, opt TrimOption) *clip.Clip {
	switch opt {
	case TrimStart:
		return clip.TrimSilence(c, true, false)
	case TrimEnd:
		return clip.TrimSilence(c, false, true)
	case TrimBoth:
		return clip.TrimSilence(c, true, true)
	default:
		return c
	}
}
