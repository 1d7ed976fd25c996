package calc

import (
	"math"

	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/settings"
)

// CalculatedValues are the totals produced by post-pipeline integration
// (§3): plastic volume and feed length, estimated weight, and total print
// time.
type CalculatedValues struct {
	PlasticVolume   float64 // mm^3
	PlasticLength   float64 // mm, filament feed length
	PlasticWeight   float64 // grams
	TotalTimeSeconds float64
}

// extrusionVolume is the swept-volume model §4.F gives for one extrusion
// segment: a rectangle of (width-thickness) by thickness, plus a
// thickness/2 radius capsule round-over at each end, times segment length.
func extrusionVolume(width, thickness, length float64) float64 {
	return ((width-thickness)*thickness + math.Pi*(thickness/2)*(thickness/2)) * length
}

func segmentLength(start, end [2]float64) float64 {
	dx, dy := end[0]-start[0], end[1]-start[1]
	return math.Hypot(dx, dy)
}

// Calculate integrates cmds deterministically — the same segment-time
// model SlowDownLayer uses — to produce CalculatedValues. It assumes cmds
// has already been through the command optimizer (so SetState carries only
// true deltas) but works equally well on a raw, unoptimized stream since it
// tracks its own running movement_speed.
func Calculate(cmds []command.Command, st *settings.Settings) CalculatedValues {
	var cv CalculatedValues
	currentSpeed := st.Speed.Travel
	var currentPos [2]float64

	filamentArea := math.Pi * st.FilamentDiameter * st.FilamentDiameter / 4

	for _, c := range cmds {
		switch c.Kind {
		case command.SetStateKind:
			if c.State.MovementSpeed != nil {
				currentSpeed = *c.State.MovementSpeed
			}
		case command.MoveAndExtrudeKind, command.ArcKind:
			length := segmentLength(c.Start, c.End)
			volume := extrusionVolume(c.Width, c.Thickness, length)
			cv.PlasticVolume += volume
			if filamentArea > 0 {
				cv.PlasticLength += volume / filamentArea
			}
			cv.TotalTimeSeconds += timeOfSegment(length, currentSpeed)
			currentPos = c.End
		case command.MoveToKind:
			cv.TotalTimeSeconds += timeOfSegment(segmentLength(currentPos, c.End), currentSpeed)
			currentPos = c.End
		case command.DelayKind:
			cv.TotalTimeSeconds += float64(c.Milliseconds) / 1000
		}
	}

	cv.PlasticWeight = cv.PlasticVolume * st.FilamentDensity / 1000 // mm^3 * g/cm^3 -> g
	return cv
}

func timeOfSegment(length, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return length / speed
}
