// SPDX-License-Identifier: EPL-2.0

// Package ptislicer assembles percussion instruments from audio files.
//
// Sources in any registered format are decoded, downmixed to mono and
// resampled to a common rate, then arranged as an ordered list of
// slices. Each slice is the sum of up to twelve layers, and the whole
// arrangement serializes to a beat-sliced binary instrument a
// hardware sampler loads directly.
//
// The root package wires the built-in decoders together and offers
// one-call conveniences:
//
//	reg := ptislicer.NewRegistry()
//	s := session.New(session.Config{Registry: reg})
//	err := s.AddSlice(ctx, "kick.wav", data)
//	out, err := s.ExportPTI(ctx, "my kit")
//
// See the session package for the composition engine, clip for the
// mono buffer transforms, pti for the container codec, and
// formats/... for the individual decoders.
package ptislicer
