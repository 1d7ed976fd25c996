// Package optimizer implements §4.G's Command Optimizer: the unary pass
// (drop no-ops), binary pass (coalesce adjacent collinear extrusions and
// adjacent state changes), state-diffing pass (rewrite each SetState to a
// true delta against the running machine state), and the SlowDownLayer
// pass that scales a layer's movement speeds down to honor
// fan.slow_down_threshold.
//
// Grounded on the reference's optimizer.rs: state_optomizer,
// unary_optimizer and binary_optimizer run in a loop until the command
// count stops shrinking (src/optimizer.rs); this repo follows spec.md's
// stated pass order (unary, binary, state-diff) rather than the
// reference's (state-diff first), since spec.md is the authoritative
// document and the two orders are semantically equivalent at a fixed
// point (SPEC_FULL.md). The binary pass's collinearity determinant is
// reused verbatim from the reference.
package optimizer
