package plotter

import (
	"math"

	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/paulmach/orb"
)

// Plotter assembles objects' ordered chains into a Command stream, reading
// per-move-type speed and the retraction tunables from a fixed Settings
// snapshot.
type Plotter struct {
	st *settings.Settings
}

// New builds a Plotter over st.
func New(st *settings.Settings) *Plotter {
	return &Plotter{st: st}
}

// state is the running plot cursor carried across chains, slices and
// objects within one Plot call — current position, the move type last
// recorded (by a SetState preamble, or by a Travel move inside a chain),
// and the trailing points of the last chain
// printed (for retraction-wipe waypoint generation).
type state struct {
	haveObject    bool
	currentObject int
	havePos       bool
	pos           orb.Point
	haveType      bool
	currentType   slicemodel.MoveType
	trail         []orb.Point
}

// Plot walks objects layer-index-aligned — every object's slice at layer k
// before any object's slice at layer k+1, one object's chains fully emitted
// before the next object's at the same layer (§4.F, §8 scenario 2) — and
// returns the flat Command stream. Objects with fewer layers than the
// tallest simply drop out once their slice stack is exhausted. Each
// object's LayerChange precedes its ChangeObject so the very first emitted
// command is always LayerChange{z0,index=0} per §6's opening invariant.
func (p *Plotter) Plot(objects []*slicemodel.Object) []command.Command {
	maxLayers := 0
	for _, obj := range objects {
		if n := len(obj.Slices); n > maxLayers {
			maxLayers = n
		}
	}

	var cmds []command.Command
	st := &state{currentObject: -1}
	for layer := 0; layer < maxLayers; layer++ {
		for _, obj := range objects {
			if layer >= len(obj.Slices) {
				continue
			}
			slice := obj.Slices[layer]
			cmds = append(cmds, command.LayerChange(slice.TopHeight, slice.LayerIndex))
			if !st.haveObject || st.currentObject != obj.ID {
				cmds = append(cmds, command.ChangeObject(obj.ID))
				st.currentObject, st.haveObject = obj.ID, true
			}
			cmds = p.plotSlice(cmds, slice, st)
		}
	}
	return cmds
}

// chainsFor prefers a slice's travel-ordered chains; a Slice built without
// running slicepass.OrderChains (most unit tests) falls back to the fixed
// category order AllChains gives, so it is still plottable.
func chainsFor(s *slicemodel.Slice) []slicemodel.Chain {
	if s.OrderedChains != nil {
		return s.OrderedChains
	}
	return s.AllChains()
}

func (p *Plotter) plotSlice(cmds []command.Command, s *slicemodel.Slice, st *state) []command.Command {
	thickness := s.Height()
	for _, chain := range chainsFor(s) {
		if len(chain.Moves) == 0 {
			continue
		}
		cmds = p.travelTo(cmds, chain.Start, st)

		pos := chain.Start
		for _, mv := range chain.Moves {
			if mv.Type == slicemodel.Travel {
				cmds = append(cmds, command.MoveTo(mv.End))
				pos = mv.End
				st.currentType, st.haveType = mv.Type, true
				continue
			}
			if !st.haveType || st.currentType != mv.Type {
				speed := p.st.Speed.Get(mv.Type)
				cmds = append(cmds, command.SetState(command.StateChange{MovementSpeed: &speed}))
				st.currentType, st.haveType = mv.Type, true
			}
			cmds = append(cmds, command.MoveAndExtrude(pos, mv.End, mv.Width, thickness))
			pos = mv.End
		}
		st.pos, st.havePos = pos, true
		st.trail = trailOf(chain)
	}
	return cmds
}

// travelTo emits the travel move (and, where needed, retraction around it)
// from the cursor's current position to target. The very first chain of a
// Plot call has no prior position to travel from.
func (p *Plotter) travelTo(cmds []command.Command, target orb.Point, st *state) []command.Command {
	if !st.havePos {
		st.pos, st.havePos = target, true
		return cmds
	}
	dist := distance(st.pos, target)
	if dist <= 1e-9 {
		return cmds
	}

	retracted := dist > p.st.MinimumRetractDistance
	if retracted {
		cmds = append(cmds, command.SetState(command.StateChange{Retract: p.retractState(st.trail)}))
	}
	cmds = append(cmds, command.MoveTo(target))
	if retracted {
		cmds = append(cmds, command.SetState(command.StateChange{Retract: command.NewUnretract()}))
	}
	st.pos = target
	return cmds
}

// retractState builds a plain Retract, or — when retraction_wipe is
// configured and a previous chain left a trail to walk backward along — a
// MoveRetract whose waypoints ramp the retract amount from zero up to
// retract_length over retraction_wipe.distance of travel back along that
// trail (§9).
func (p *Plotter) retractState(trail []orb.Point) *command.RetractState {
	wipe := p.st.RetractionWipe
	if wipe == nil || wipe.Distance <= 0 || len(trail) < 2 {
		return command.NewRetract()
	}

	var waypoints []command.Waypoint
	remaining := wipe.Distance
	covered := 0.0
	prev := trail[0]
	for i := 1; i < len(trail) && remaining > 0; i++ {
		cur := trail[i]
		segLen := distance(prev, cur)
		if segLen <= 0 {
			prev = cur
			continue
		}
		step := math.Min(segLen, remaining)
		covered += step
		frac := covered / wipe.Distance
		if frac > 1 {
			frac = 1
		}
		t := step / segLen
		waypoints = append(waypoints, command.Waypoint{
			RetractAmount: p.st.RetractLength * frac,
			Point:         orb.Point{lerp(prev[0], cur[0], t), lerp(prev[1], cur[1], t)},
		})
		remaining -= step
		prev = cur
	}
	if len(waypoints) == 0 {
		return command.NewRetract()
	}
	waypoints[len(waypoints)-1].RetractAmount = p.st.RetractLength
	return command.NewMoveRetract(waypoints)
}

// trailOf returns chain's points in reverse traversal order, starting at
// its end — the walk a retraction wipe follows backward along the last
// extrusion.
func trailOf(chain slicemodel.Chain) []orb.Point {
	points := make([]orb.Point, 0, len(chain.Moves)+1)
	points = append(points, chain.Start)
	for _, mv := range chain.Moves {
		points = append(points, mv.End)
	}
	trail := make([]orb.Point, len(points))
	for i, pt := range points {
		trail[len(points)-1-i] = pt
	}
	return trail
}

func distance(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return math.Hypot(dx, dy)
}

func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}
