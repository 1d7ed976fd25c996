package tower

import (
	"container/heap"

	"github.com/arcweld/slicecore/geom"
)

// Iterator sweeps a TriangleTower's plane monotonically upward in Z,
// emitting closed contour loops at each requested height. It is strictly
// sequential: the event heap it drains is stateful and not safe for
// concurrent use. Callers that need parallel slice construction should
// collect (bottom, top, loops) tuples sequentially first and then fan the
// polygon-construction work out over those tuples — see package slicing.
type Iterator struct {
	tower       *TriangleTower
	zHeight     float64
	activeRings []Ring
}

// NewIterator returns an Iterator positioned at the tower's lowest event
// height (or +Inf if the tower has no vertices at all).
func NewIterator(t *TriangleTower) *Iterator {
	return &Iterator{tower: t, zHeight: t.heightOfNextVertex()}
}

// AdvanceToHeight moves the sweep plane to z, popping every event below z,
// splitting the active rings on each popped vertex's edges, folding in
// that vertex's own fragments, and rejoining. It returns ErrNonManifold if
// any active ring fails to close into a complete cycle.
func (it *Iterator) AdvanceToHeight(z float64) error {
	for it.tower.heightOfNextVertex() < z && it.tower.events.Len() > 0 {
		popped := heap.Pop(it.tower.events).(*Vertex)

		var split []Ring
		for _, r := range it.activeRings {
			split = append(split, splitOnVertex(r, popped.Index)...)
		}
		split = append(split, popped.Fragments...)

		it.activeRings = joinFragments(split)

		for _, r := range it.activeRings {
			if !r.IsComplete() {
				return ErrNonManifold
			}
		}
	}

	it.zHeight = z
	return nil
}

// GetPoints maps the current active rings to closed 2-D polylines: every
// Edge element becomes the point where that edge crosses the current
// plane height. The first point is repeated at the end to close the loop.
func (it *Iterator) GetPoints() [][]geom.Vertex {
	loops := make([][]geom.Vertex, 0, len(it.activeRings))
	for _, r := range it.activeRings {
		var pts []geom.Vertex
		for _, e := range r {
			if e.Kind != ElemEdge {
				continue
			}
			pts = append(pts, geom.LineZIntersection(it.zHeight,
				it.tower.vertices[e.StartIndex], it.tower.vertices[e.EndIndex]))
		}
		if len(pts) > 0 && !pts[0].Equal(pts[len(pts)-1]) {
			pts = append(pts, pts[0])
		}
		loops = append(loops, pts)
	}
	return loops
}

// IsFinished reports whether every event in the tower has been consumed.
func (it *Iterator) IsFinished() bool {
	return it.tower.events.Len() == 0
}

// Height returns the Z the iterator is currently positioned at.
func (it *Iterator) Height() float64 {
	return it.zHeight
}
