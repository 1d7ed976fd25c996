// Package workpool provides the single bounded, cooperatively-cancellable
// fan-out primitive the pipeline uses for its three parallel scopes: across
// input meshes, across layers within an object, and across independent
// per-object post-passes.
//
// Map runs a function over a slice of inputs with a bounded number of
// concurrent workers and returns the results in input order, short-
// circuiting on the first error. It is a generic, trimmed-down descendant
// of a channel-backed worker pool: no per-task metrics, no task/result
// wrapper types — just ordered parallel map with cancellation, which is
// all the slicing pipeline's data-parallel passes need.
package workpool
