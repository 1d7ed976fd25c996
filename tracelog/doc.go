// Package tracelog is a small structured, leveled logger used throughout
// the pipeline for the ambient diagnostic output that has nothing to do
// with Callbacks' progress-reporting contract (§6) — things like per-pass
// timing, warning counts, and worker-pool errors a developer watches during
// a run but a caller's UI never sees.
//
// What: Level-gated Debug/Info/Warn/Error methods taking a message plus
// key-value pairs, writing one line per call to an io.Writer.
//
// Why hand-rolled instead of a third-party logging library: none of the
// retrieved example repositories import one — every repo that logs at all
// rolls its own small leveled logger over the standard library's io.Writer,
// so this follows that same shape rather than reaching outside the corpus
// for a dependency nothing in it uses.
package tracelog
