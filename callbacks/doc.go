// Package callbacks defines the orchestrator's progress-reporting
// boundary: Callbacks is invoked only from the orchestration thread between
// passes (never concurrently), so implementations need no locking of their
// own. Two implementations ship here — Silent (a no-op, for library
// embedding where progress reporting is unwanted) and Profiling (logs a
// phase name plus elapsed time since the previous call, for diagnosing
// which pass dominates a slice) — mirroring the two the pipeline this was
// learned from ships: a quiet default and a profiling one layered on top.
package callbacks
