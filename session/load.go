// SPDX-License-Identifier: EPL-2.0

package session

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/tapir-audio/ptislicer/audio"
	"github.com/tapir-audio/ptislicer/clip"
)

// loadSource runs the validated load pipeline: decode via the registry,
// downmix to mono, enforce the duration ceiling, resample to the
// session rate. Nothing is admitted into the session here; callers wrap
// the returned record into a slice or layer under their own lock.
func (s *Session) loadSource(name string, data []byte) (AudioFile, error) {
	dec, ok := s.cfg.Registry.Get(path.Ext(name))
	if !ok {
		return AudioFile{}, fmt.Errorf("%q: %w", name, ErrDecode)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return AudioFile{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(src)
	if err != nil {
		return AudioFile{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	c := clip.Downmix(samples, src.Channels(), src.SampleRate())
	if c.Duration() > s.cfg.MaxDuration {
		return AudioFile{}, fmt.Errorf("%q: %w", name, ErrDurationExceeded)
	}

	c = clip.Resample(c, s.cfg.SampleRate)
	return newAudioFile(displayName(name), c), nil
}

// notifyLoadErr translates a load failure into its user-facing message.
func (s *Session) notifyLoadErr(err error) {
	switch {
	case errors.Is(err, ErrDurationExceeded):
		msg := fmt.Sprintf("too long (>%ds)", int(s.cfg.MaxDuration.Seconds()))
		s.notify.Notify(msg, Error, notifyTimeout)
	case errors.Is(err, ErrDecode):
		s.notify.Notify("invalid audio file", Error, notifyTimeout)
	}
}

// displayName derives a record name from the source name, stripping any
// directory part and the extension.
func displayName(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
