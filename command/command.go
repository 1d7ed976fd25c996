package command

import "github.com/paulmach/orb"

// Kind tags which variant a Command holds.
type Kind int

const (
	MoveToKind Kind = iota
	MoveAndExtrudeKind
	ArcKind
	SetStateKind
	LayerChangeKind
	DelayKind
	ChangeObjectKind
	// NoActionKind is a transient placeholder the unary optimizer pass
	// always removes; its presence in a post-optimization stream is a
	// programmer error, not a recoverable condition (§7).
	NoActionKind
)

// Command is the lowest-level operation in the output stream, tagged by
// Kind with only the fields that variant uses populated. Start/End/Center
// are 2-D points in the slice plane; Z carries a LayerChange's height.
type Command struct {
	Kind Kind

	Start, End, Center orb.Point
	Clockwise          bool
	Width, Thickness   float64

	State StateChange

	Z          float64
	LayerIndex int

	Milliseconds int64

	ObjectID int
}

// MoveTo builds a travel move to end.
func MoveTo(end orb.Point) Command {
	return Command{Kind: MoveToKind, End: end}
}

// MoveAndExtrude builds an extruding move from start to end.
func MoveAndExtrude(start, end orb.Point, width, thickness float64) Command {
	return Command{Kind: MoveAndExtrudeKind, Start: start, End: end, Width: width, Thickness: thickness}
}

// Arc builds an arc move; width/thickness have the same meaning as
// MoveAndExtrude.
func Arc(start, end, center orb.Point, clockwise bool, width, thickness float64) Command {
	return Command{Kind: ArcKind, Start: start, End: end, Center: center, Clockwise: clockwise, Width: width, Thickness: thickness}
}

// SetState builds a state-change delta command.
func SetState(state StateChange) Command {
	return Command{Kind: SetStateKind, State: state}
}

// LayerChange builds a layer-transition command.
func LayerChange(z float64, index int) Command {
	return Command{Kind: LayerChangeKind, Z: z, LayerIndex: index}
}

// Delay builds a dwell command.
func Delay(milliseconds int64) Command {
	return Command{Kind: DelayKind, Milliseconds: milliseconds}
}

// ChangeObject builds an object-transition command.
func ChangeObject(objectID int) Command {
	return Command{Kind: ChangeObjectKind, ObjectID: objectID}
}

// NoAction builds the transient placeholder the unary optimizer pass
// always strips before the stream reaches a caller.
func NoAction() Command {
	return Command{Kind: NoActionKind}
}

// IsNoOp reports whether cmd is a command the unary optimizer pass
// removes outright: NoAction, a zero-length MoveAndExtrude/Arc, a zero
// Delay, or an empty SetState.
func (c Command) IsNoOp() bool {
	switch c.Kind {
	case NoActionKind:
		return true
	case MoveAndExtrudeKind, ArcKind:
		return c.Start == c.End
	case DelayKind:
		return c.Milliseconds == 0
	case SetStateKind:
		return c.State.IsEmpty()
	default:
		return false
	}
}
