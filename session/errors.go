// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	// ErrDecode marks source bytes that could not be decoded as audio.
	ErrDecode = errors.New("invalid audio file")
	// ErrDurationExceeded marks a source or aggregate over the ceiling.
	ErrDurationExceeded = errors.New("duration exceeded")
	// ErrMaxSlices marks an AddSlice against a full slice list.
	ErrMaxSlices = errors.New("max slices reached")
	// ErrMaxLayers marks an AddLayer against a full slice.
	ErrMaxLayers = errors.New("max layers reached")
	// ErrMinLayers marks a RemoveLayer that would leave a slice empty.
	ErrMinLayers = errors.New("must have at least one layer")
	// ErrNotFound marks an operation on a record the session no longer holds.
	ErrNotFound = errors.New("not in session")
	// ErrNoSlices marks an export of an empty session.
	ErrNoSlices = errors.New("no slices to export")
)
