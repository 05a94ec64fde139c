// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not a valid aiff file")

	// ErrUnsupportedAiffLayout is returned when the file's format chunk
	// cannot be read.
	ErrUnsupportedAiffLayout = errors.New("unsupported aiff layout")
)
