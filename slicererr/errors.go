package slicererr

import "fmt"

// InputError marks a malformed input object specification: a missing file
// or an unsupported extension.
type InputError struct {
	Path   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("slicer: input error for %q: %s", e.Path, e.Reason)
}

// LoadError wraps a mesh-loader parser failure (STL/3MF).
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("slicer: failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SettingsError marks a settings value that is missing after partial-file
// merge or fails validation, naming the offending field and value.
type SettingsError struct {
	Field string
	Value float64
	Msg   string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("slicer: settings error: %s (%s=%g)", e.Msg, e.Field, e.Value)
}

// Axis identifies one of the three print-volume axes for a BoundsError.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// BoundsError marks a mesh or move endpoint outside the configured print
// volume on the named axis.
type BoundsError struct {
	Axis          Axis
	Value, Limit  float64
	Subject       string // "mesh" or "move"
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("slicer: %s out of bounds on axis %s: %g exceeds limit %g", e.Subject, e.Axis, e.Value, e.Limit)
}

// TowerGeneration marks a non-manifold mesh: the iterator found an open
// ring at some height.
type TowerGeneration struct {
	Height float64
}

func (e *TowerGeneration) Error() string {
	return fmt.Sprintf("slicer: non-manifold mesh detected at height %g", e.Height)
}

// SinkError wraps a failed write to the caller's command-stream sink.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("slicer: sink write failed: %v", e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// MacroParseError marks a failed instruction-template evaluation; the core
// never evaluates templates itself, but forwards a failure reported by the
// external templater through this type so it participates in the same
// taxonomy as every other pipeline error.
type MacroParseError struct {
	Template string
	Err      error
}

func (e *MacroParseError) Error() string {
	return fmt.Sprintf("slicer: macro parse error in %q: %v", e.Template, e.Err)
}

func (e *MacroParseError) Unwrap() error { return e.Err }
