// SPDX-License-Identifier: EPL-2.0

// Package session implements the composition engine: an ordered list of
// slices, each built from one or more layered recordings that are
// downmixed, summed and trimmed into the slice's playable audio, plus a
// single-voice preview player and the beat-sliced instrument export.
//
// A Session is an explicit context object: create one per editing
// context and drop it when done; the package keeps no global state.
//
// # Locking model
//
// Two independent FIFO queues serialize structural edits: one for the
// slice list (AddSlice, RemoveSlice, MoveSliceUp/Down, ExportPTI) and
// one, global across all slices, for layer edits (AddLayer,
// RemoveLayer). A layer edit recomposes its slice inside the same
// critical section, so two layer edits can never race the same
// recomposition. Trim application is intentionally outside both
// queues: a trim racing a concurrent layer edit on the same slice may
// be recomposed over, but every recomposition derives from current
// state, so the surviving composite is consistent. A short internal
// mutex keeps individual reads and writes of the slice list memory
// safe; it is not an ordering guarantee.
//
// Capacity and duration ceilings are enforced at admission time only.
// In particular, AddSlice checks the aggregate duration of the slices
// that already exist, before loading the candidate, and admission is
// not re-validated when a later trim changes durations.
package session
