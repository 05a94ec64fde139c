// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding via github.com/hajimehoshi/go-mp3.
//
// The decoder returns an audio.Source producing stereo interleaved
// float32 samples in [-1.0, 1.0] at the file's native rate:
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
//
// Decoding only; there is no MP3 encoder.
package mp3
