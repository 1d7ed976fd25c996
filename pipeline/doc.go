// Package pipeline is §4.I's orchestrator: the single entry point that
// drives §4.A through §4.G over a set of input meshes and a frozen
// Settings snapshot, reporting progress through callbacks.Callbacks and
// handing the optimized Command stream to a caller-supplied Sink.
//
// Grounded on the reference's Pipeline::slice (gladius_core/src/pipeline.rs):
// the same nine-stage sequence — validate settings, check model bounds,
// build towers, slice, object passes, slice passes, plot, check move
// bounds, optimize — called with a StateUpdate between every stage, ending
// with HandleCalculatedValues then HandleSliceFinished on success.
// Cancellation is cooperative (§5): Run checks ctx between stages, never
// mid-pass, since in-flight parallel regions run to completion.
package pipeline
