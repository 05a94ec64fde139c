// SPDX-License-Identifier: EPL-2.0

package session

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tapir-audio/ptislicer/audio"
	"github.com/tapir-audio/ptislicer/qlock"
)

// Config for a Session. Zero fields take the defaults below.
type Config struct {
	// SampleRate is the session rate; every loaded source is resampled
	// to it so layer sums align frame-wise. Default 44100.
	SampleRate int
	// MaxSlices caps the slice list. Default 48 (the slice table size
	// of the instrument container).
	MaxSlices int
	// MaxLayers caps layers per slice. Default 12.
	MaxLayers int
	// MaxDuration is both the per-source ceiling and the aggregate
	// ceiling checked at slice admission. Default 45s.
	MaxDuration time.Duration
	// Registry supplies decoders for source loading. Defaults to an
	// empty registry; see the root package for one with every built-in
	// decoder registered.
	Registry *audio.Registry
	// Notifier receives user-facing messages. Default discards them.
	Notifier Notifier
	// Logger for structured engine logs. Default slog.Default().
	Logger *slog.Logger
	// PlaybackSink receives 16-bit little-endian PCM from the preview
	// player. Default io.Discard.
	PlaybackSink io.Writer
}

func (c Config) withDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = 44100
	}
	if c.MaxSlices == 0 {
		c.MaxSlices = 48
	}
	if c.MaxLayers == 0 {
		c.MaxLayers = 12
	}
	if c.MaxDuration == 0 {
		c.MaxDuration = 45 * time.Second
	}
	if c.Registry == nil {
		c.Registry = audio.NewRegistry()
	}
	if c.Notifier == nil {
		c.Notifier = NopNotifier{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.PlaybackSink == nil {
		c.PlaybackSink = io.Discard
	}
	return c
}

// Session owns the ordered slice list and the single preview voice.
// See the package documentation for the locking model.
type Session struct {
	cfg    Config
	log    *slog.Logger
	notify Notifier
	player *Player

	sliceQ qlock.Mutex // serializes slice-structural edits
	layerQ qlock.Mutex // serializes layer-structural edits, global across slices

	mu        sync.RWMutex
	slices    []*Slice
	editSlice uuid.UUID
}

// New creates a session with cfg applied over the defaults.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		cfg:    cfg,
		log:    cfg.Logger,
		notify: cfg.Notifier,
		player: NewPlayer(cfg.PlaybackSink),
	}
}

// Slices returns the current slice order. The returned slice is a
// fresh copy; the elements are the live records.
func (s *Session) Slices() []*Slice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Slice, len(s.slices))
	copy(out, s.slices)
	return out
}

// TotalSlices is the current slice count.
func (s *Session) TotalSlices() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slices)
}

// MaxSlicesReached reports whether the slice list is at capacity.
func (s *Session) MaxSlicesReached() bool {
	return s.TotalSlices() >= s.cfg.MaxSlices
}

// TotalDuration sums the current post-trim duration of every slice.
func (s *Session) TotalDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalDurationLocked()
}

// DurationExceeded reports whether the aggregate duration is over the
// ceiling.
func (s *Session) DurationExceeded() bool {
	return s.TotalDuration() > s.cfg.MaxDuration
}

func (s *Session) totalDurationLocked() time.Duration {
	var total time.Duration
	for _, sl := range s.slices {
		total += sl.Audio.Duration()
	}
	return total
}

// SetEditSlice records sl as the slice under edit. Selection only; no
// audio is recomputed.
func (s *Session) SetEditSlice(sl *Slice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sl == nil {
		s.editSlice = uuid.Nil
		return
	}
	s.editSlice = sl.ID
}

// EditSlice resolves the slice under edit, or nil when none is selected
// or it has been removed.
func (s *Session) EditSlice() *Slice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, sl := s.findSliceLocked(s.editSlice)
	return sl
}

// findSliceLocked resolves a slice id against the live list. Callers
// hold s.mu. A miss returns (-1, nil); ids of removed slices simply no
// longer resolve.
func (s *Session) findSliceLocked(id uuid.UUID) (int, *Slice) {
	if id == uuid.Nil {
		return -1, nil
	}
	for i, sl := range s.slices {
		if sl.ID == id {
			return i, sl
		}
	}
	return -1, nil
}
