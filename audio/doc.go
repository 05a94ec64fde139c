// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding boundary of the library.
//
// A Source streams interleaved float32 PCM in [-1.0, 1.0]; a Decoder turns
// raw file bytes into a Source. The Registry maps file extensions to
// decoders so callers can pick a decoder from a file name:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	dec, ok := reg.Get(filepath.Ext("kick.wav"))
//	src, err := dec.Decode(bytes.NewReader(data))
//
// ReadAll drains a Source into memory, which is how the composition layer
// consumes decoded audio before folding it into a mono clip:
//
//	samples, err := audio.ReadAll(src)
//	c := clip.Downmix(samples, src.Channels(), src.SampleRate())
//
// The decoders themselves live in the formats subpackages.
package audio
