package slicemodel

import "github.com/paulmach/orb"

// MoveType is the categorical tag on a Move that selects per-type speed,
// acceleration and extrusion width downstream in the plotter and command
// optimizer. The zero value is never a real category — always set one
// explicitly.
type MoveType int

const (
	_ MoveType = iota
	TopSolidInfill
	SolidInfill
	Infill
	ExteriorSurfacePerimeter
	InteriorSurfacePerimeter
	ExteriorInnerPerimeter
	InteriorInnerPerimeter
	Bridging
	Support
	Travel
)

// String renders the move type the way log lines and command-stream dumps
// reference it.
func (m MoveType) String() string {
	switch m {
	case TopSolidInfill:
		return "TopSolidInfill"
	case SolidInfill:
		return "SolidInfill"
	case Infill:
		return "Infill"
	case ExteriorSurfacePerimeter:
		return "ExteriorSurfacePerimeter"
	case InteriorSurfacePerimeter:
		return "InteriorSurfacePerimeter"
	case ExteriorInnerPerimeter:
		return "ExteriorInnerPerimeter"
	case InteriorInnerPerimeter:
		return "InteriorInnerPerimeter"
	case Bridging:
		return "Bridging"
	case Support:
		return "Support"
	case Travel:
		return "Travel"
	default:
		return "Unknown"
	}
}

// IsPerimeter reports whether m is one of the four perimeter categories.
func (m MoveType) IsPerimeter() bool {
	switch m {
	case ExteriorSurfacePerimeter, InteriorSurfacePerimeter, ExteriorInnerPerimeter, InteriorInnerPerimeter:
		return true
	default:
		return false
	}
}

// Move is a single motion: travel to End at Width, extruding unless Type is
// Travel.
type Move struct {
	End   orb.Point
	Width float64
	Type  MoveType
}

// NewMove builds a Move; passes construct through this rather than the
// struct literal so a field can gain validation later without touching
// every call site.
func NewMove(end orb.Point, width float64, t MoveType) Move {
	return Move{End: end, Width: width, Type: t}
}
