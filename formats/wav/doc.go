// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and 16-bit PCM WAV encoding.
//
// Decoding is built on github.com/go-audio/wav and handles 8, 16 and
// 24-bit PCM at any sample rate and channel count:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
//
// The decoder returns an audio.Source producing float32 samples in
// [-1.0, 1.0]. Inputs that do not implement io.ReadSeeker are buffered
// in memory first.
//
// Write16 goes the other way, writing mono 16-bit PCM:
//
//	err := wav.Write16(out, 44100, samples)
package wav
