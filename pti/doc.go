// SPDX-License-Identifier: EPL-2.0

// Package pti reads and writes the tracker instrument container: a
// fixed 392-byte little-endian header followed by a signed 16-bit PCM
// payload.
//
// Parsing is deliberately lenient for compatibility across firmware
// revisions: unrecognized enum bytes coerce to each field's documented
// default instead of failing, and slice-table entries beyond the
// total-slices count are parsed and dropped. The only parse failure is
// a buffer shorter than the fixed header.
//
// Building goes the other way: Build serializes a single clip as a
// one-shot instrument, BuildBeatSliced concatenates an ordered set of
// clips and records each clip's start as a fraction of the total frame
// count in the slice table, and Default produces an empty instrument.
package pti
