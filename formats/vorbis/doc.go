// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via
// github.com/jfreymuth/oggvorbis.
//
// The decoder returns an audio.Source producing interleaved float32
// samples in [-1.0, 1.0] at the stream's native rate and channel count:
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
package vorbis
