// SPDX-License-Identifier: EPL-2.0

package pti

import "errors"

var (
	ErrShortBuffer   = errors.New("buffer shorter than instrument header")
	ErrNoClips       = errors.New("no clips to export")
	ErrTooManySlices = errors.New("too many clips for slice table")
	ErrRateMismatch  = errors.New("clips must share one sample rate")
)
