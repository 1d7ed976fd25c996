package optimizer

import (
	"math"

	"github.com/arcweld/slicecore/command"
)

// collinearTolerance is the |det| bound the binary pass's collinearity
// test allows, reused verbatim from the reference implementation (§4.G).
const collinearTolerance = 1e-5

// Unary drops every command cmd.IsNoOp reports true for: NoAction, a
// zero-length MoveAndExtrude/Arc, a zero Delay, and an empty SetState
// (§4.G).
func Unary(cmds []command.Command) []command.Command {
	out := make([]command.Command, 0, len(cmds))
	for _, c := range cmds {
		if c.IsNoOp() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Binary repeatedly coalesces adjacent command pairs in a single
// left-to-right sweep (§4.G): two MoveTo commands collapse to the second;
// two collinear, point-sharing MoveAndExtrude commands merge into one
// covering both; two SetState commands merge via StateChange.Combine.
func Binary(cmds []command.Command) []command.Command {
	out := make([]command.Command, 0, len(cmds))
	for _, c := range cmds {
		if len(out) > 0 {
			if merged, ok := tryMerge(out[len(out)-1], c); ok {
				out[len(out)-1] = merged
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func tryMerge(a, b command.Command) (command.Command, bool) {
	if a.Kind != b.Kind {
		return command.Command{}, false
	}
	switch a.Kind {
	case command.MoveToKind:
		return b, true
	case command.MoveAndExtrudeKind:
		if a.End != b.Start || !collinear(a.Start, b.Start, b.End) {
			return command.Command{}, false
		}
		return command.MoveAndExtrude(a.Start, b.End, a.Width, a.Thickness), true
	case command.SetStateKind:
		return command.SetState(a.State.Combine(b.State)), true
	default:
		return command.Command{}, false
	}
}

// collinear reuses the reference's 2x2 determinant test verbatim: the
// three points aStart, bStart, bEnd (bStart == aStart's paired segment's
// end, the shared point) are collinear when the determinant of the
// matrix built from their coordinate differences is within
// collinearTolerance of zero.
func collinear(aStart, bStart, bEnd [2]float64) bool {
	det := (aStart[0]-bStart[0])*(bStart[1]-bEnd[1]) - (aStart[1]-bStart[1])*(bStart[0]-bEnd[0])
	return math.Abs(det) < collinearTolerance
}

// StateDiff walks cmds carrying a running machine state (starting from
// initial) and rewrites every SetState to only the fields that differ from
// it, updating the running state as it goes (§4.G, §8).
func StateDiff(cmds []command.Command, initial command.StateChange) []command.Command {
	running := initial
	out := make([]command.Command, len(cmds))
	for i, c := range cmds {
		if c.Kind != command.SetStateKind {
			out[i] = c
			continue
		}
		diffed := running.Diff(c.State)
		out[i] = command.SetState(diffed)
	}
	return out
}

// Optimize runs {Unary, Binary, StateDiff, Unary} in a loop, starting the
// running machine state from initial, until the command count stabilizes
// (§4.G, §8 idempotence).
func Optimize(cmds []command.Command, initial command.StateChange) []command.Command {
	current := cmds
	for {
		next := Unary(current)
		next = Binary(next)
		next = StateDiff(next, initial)
		next = Unary(next)
		if len(next) == len(current) {
			return next
		}
		current = next
	}
}
