// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding via github.com/go-audio/aiff.
//
// The decoder returns an audio.Source producing interleaved float32
// samples in [-1.0, 1.0], normalized from the file's bit depth
// (8, 16, 24 or 32 bits per sample):
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
package aiff
