// Package command defines the lowest-level output of the pipeline: the
// Command tagged union (§3) that the plotter emits and the optimizer
// rewrites in place, plus the StateChange delta type and its RetractMode
// sub-variant.
//
// What: a closed set of Command variants (MoveTo, MoveAndExtrude, Arc,
// SetState, LayerChange, Delay, ChangeObject, NoAction) represented as one
// struct tagged by Kind, in the same flat-tagged-struct shape the teacher
// uses for its own small closed variant sets — Go has no sum types, and a
// field-tagged struct keeps construction and zero-value handling simple
// without an interface-per-variant allocation.
//
// Determinism: Command and StateChange are plain data; nothing in this
// package holds state or performs I/O.
package command
