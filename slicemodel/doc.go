// Package slicemodel defines the per-layer and per-object data model that
// every later pass (object passes, slice passes, the plotter) reads and
// mutates in place: Slice (one layer's 2D cross-section plus its populated
// move chains), Object (an ordered stack of Slices for one mesh), Chain (an
// ordered polyline of Moves of one category), and the MoveType taxonomy that
// selects speed, acceleration and width downstream.
//
// What: the mutable core that slice passes thread through §4.E of the
// pipeline, one pass at a time, in place.
//
// Why: keeping this as one small package with no behavior of its own — no
// pass logic lives here — means every pass package can depend on it without
// depending on each other.
//
// Determinism: Slice and Object carry no hidden state; two passes given the
// same Slice in the same order produce the same result.
package slicemodel
