package command

import "github.com/paulmach/orb"

// RetractKind selects which retraction behavior a StateChange requests.
type RetractKind int

const (
	NoRetract RetractKind = iota
	Retract
	Unretract
	MoveRetract
)

// Waypoint is one (retract_amount, point) pair along a MoveRetract wipe
// path — the only Command payload that is variable-length, emitted only
// by the plotter when settings.RetractionWipe is configured (§9).
type Waypoint struct {
	RetractAmount float64
	Point         orb.Point
}

// RetractState is the retract sub-field of a StateChange delta.
type RetractState struct {
	Kind      RetractKind
	Waypoints []Waypoint // only meaningful when Kind == MoveRetract
}

// StateChange represents a delta to apply to the running machine state
// (§3): every field is optional (nil means "inherit the current value");
// Retract is the one non-scalar field, an enum rather than a boolean.
type StateChange struct {
	ExtruderTemp  *float64
	BedTemp       *float64
	MovementSpeed *float64
	Acceleration  *float64
	FanSpeed      *float64
	AuxFanSpeed   *float64
	Retract       *RetractState
}

// IsEmpty reports whether every field of s is nil — the unary optimizer
// pass drops SetState commands for which this is true.
func (s StateChange) IsEmpty() bool {
	return s.ExtruderTemp == nil && s.BedTemp == nil && s.MovementSpeed == nil &&
		s.Acceleration == nil && s.FanSpeed == nil && s.AuxFanSpeed == nil && s.Retract == nil
}

// Combine merges s with o: o's fields override s's wherever both are set,
// s's fields survive wherever o leaves them nil (union across disjoint
// fields) — the binary optimizer pass's rule for coalescing two adjacent
// SetState commands.
func (s StateChange) Combine(o StateChange) StateChange {
	return StateChange{
		ExtruderTemp:  orFloat(o.ExtruderTemp, s.ExtruderTemp),
		BedTemp:       orFloat(o.BedTemp, s.BedTemp),
		MovementSpeed: orFloat(o.MovementSpeed, s.MovementSpeed),
		Acceleration:  orFloat(o.Acceleration, s.Acceleration),
		FanSpeed:      orFloat(o.FanSpeed, s.FanSpeed),
		AuxFanSpeed:   orFloat(o.AuxFanSpeed, s.AuxFanSpeed),
		Retract:       orRetract(o.Retract, s.Retract),
	}
}

// Diff folds incoming into the receiver (the running machine state,
// mutated in place to reflect every field incoming sets) and returns only
// the fields that actually differ from the receiver's prior value — the
// state-diffing pass's rewrite of a SetState to a true delta (§4.G, §8).
func (running *StateChange) Diff(incoming StateChange) StateChange {
	var out StateChange
	out.ExtruderTemp, running.ExtruderTemp = diffFloat(running.ExtruderTemp, incoming.ExtruderTemp)
	out.BedTemp, running.BedTemp = diffFloat(running.BedTemp, incoming.BedTemp)
	out.MovementSpeed, running.MovementSpeed = diffFloat(running.MovementSpeed, incoming.MovementSpeed)
	out.Acceleration, running.Acceleration = diffFloat(running.Acceleration, incoming.Acceleration)
	out.FanSpeed, running.FanSpeed = diffFloat(running.FanSpeed, incoming.FanSpeed)
	out.AuxFanSpeed, running.AuxFanSpeed = diffFloat(running.AuxFanSpeed, incoming.AuxFanSpeed)
	out.Retract, running.Retract = diffRetract(running.Retract, incoming.Retract)
	return out
}

func diffFloat(current, incoming *float64) (diff, next *float64) {
	if incoming == nil {
		return nil, current
	}
	if current != nil && *current == *incoming {
		return nil, current
	}
	v := *incoming
	return &v, &v
}

func diffRetract(current, incoming *RetractState) (diff, next *RetractState) {
	if incoming == nil {
		return nil, current
	}
	if current != nil && retractEqual(*current, *incoming) {
		return nil, current
	}
	v := *incoming
	return &v, &v
}

func retractEqual(a, b RetractState) bool {
	if a.Kind != b.Kind || len(a.Waypoints) != len(b.Waypoints) {
		return false
	}
	for i := range a.Waypoints {
		if a.Waypoints[i] != b.Waypoints[i] {
			return false
		}
	}
	return true
}

func orFloat(primary, fallback *float64) *float64 {
	if primary != nil {
		return primary
	}
	return fallback
}

func orRetract(primary, fallback *RetractState) *RetractState {
	if primary != nil {
		return primary
	}
	return fallback
}

// NewNoRetract, NewRetract, NewUnretract and NewMoveRetract, RetractState's
// per-kind constructors, let callers
// write command.SetState(command.StateChange{Retract: command.NewRetract()}).
func NewNoRetract() *RetractState   { return &RetractState{Kind: NoRetract} }
func NewRetract() *RetractState     { return &RetractState{Kind: Retract} }
func NewUnretract() *RetractState   { return &RetractState{Kind: Unretract} }
func NewMoveRetract(waypoints []Waypoint) *RetractState {
	return &RetractState{Kind: MoveRetract, Waypoints: waypoints}
}
