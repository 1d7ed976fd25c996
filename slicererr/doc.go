// Package slicererr defines the error taxonomy every pipeline stage
// surfaces through: one sentinel type per §7 variant (InputError,
// LoadError, SettingsError, BoundsError, TowerGeneration, SinkError,
// MacroParseError), all satisfying error and distinguishable with
// errors.As. Every variant is non-recoverable within the pipeline — the
// orchestrator never retries, it short-circuits on the first one.
//
// What: a small closed set of typed errors, not a generic error-code enum —
// each variant carries exactly the fields that pin down what failed.
//
// Why a typed sum instead of sentinel errors.New values: several variants
// (SettingsError, BoundsError) carry structured data callers need to act on
// (which setting, which axis) that a bare sentinel can't express; the ones
// with a single field (TowerGeneration's height, SinkError's wrapped
// error) still get their own type
// so errors.As discriminates the taxonomy without string matching.
package slicererr
