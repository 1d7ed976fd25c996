package slicemodel

import (
	"math"

	"github.com/arcweld/slicecore/polygon"
	"github.com/paulmach/orb"
)

// Chain is an ordered polyline of Moves belonging to one category — one
// perimeter loop, one infill hatch run, one support outline segment. The
// plotter turns a Chain into Commands; OrderChains (the last slice pass)
// reorders and, for closed chains, re-rotates a slice's chains to minimize
// travel between them.
type Chain struct {
	Start  orb.Point
	Moves  []Move
	Closed bool
}

// NewChain builds a Chain from its start point and moves.
func NewChain(start orb.Point, moves []Move, closed bool) Chain {
	return Chain{Start: start, Moves: moves, Closed: closed}
}

// End returns the chain's final point: the last move's endpoint, or Start
// if the chain has no moves.
func (c Chain) End() orb.Point {
	if len(c.Moves) == 0 {
		return c.Start
	}
	return c.Moves[len(c.Moves)-1].End
}

// RotatedToClosest returns a copy of a closed chain re-rotated so its Start
// is the point closest to from; non-closed chains are returned unchanged,
// since re-rotating an open polyline would change the shape it draws.
func (c Chain) RotatedToClosest(from orb.Point) Chain {
	if !c.Closed || len(c.Moves) == 0 {
		return c
	}
	points := make([]orb.Point, 0, len(c.Moves)+1)
	points = append(points, c.Start)
	for _, m := range c.Moves {
		points = append(points, m.End)
	}
	// The closing point duplicates Start; drop it before searching so the
	// rotation candidates are exactly the distinct ring vertices.
	points = points[:len(points)-1]

	best, bestDist := 0, math.MaxFloat64
	for i, p := range points {
		d := sqDist(p, from)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == 0 {
		return c
	}

	moveType := c.Moves[0].Type
	rotated := make([]Move, 0, len(c.Moves))
	for i := 0; i < len(points); i++ {
		idx := (best + i) % len(points)
		next := points[(idx+1)%len(points)]
		w := c.Moves[idx%len(c.Moves)].Width
		rotated = append(rotated, NewMove(next, w, moveType))
	}
	return NewChain(points[best], rotated, true)
}

func sqDist(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// ChainFromRing builds a closed Chain tracing ring's points in order, one
// Move per edge plus a final Move back to Start, all carrying width and
// moveType. Object and slice passes that emit whole rings (skirt, brim,
// perimeters, support outline) go through this instead of hand-building
// Moves so every ring becomes a Chain the same way.
func ChainFromRing(ring orb.Ring, width float64, moveType MoveType) Chain {
	if len(ring) == 0 {
		return Chain{}
	}
	start := ring[0]
	moves := make([]Move, 0, len(ring))
	for i := 1; i < len(ring); i++ {
		moves = append(moves, NewMove(ring[i], width, moveType))
	}
	moves = append(moves, NewMove(start, width, moveType))
	return NewChain(start, moves, true)
}

// ChainsFromMultiPolygon builds one closed Chain per ring in mp — outer
// boundaries and holes alike.
func ChainsFromMultiPolygon(mp polygon.MultiPolygon, width float64, moveType MoveType) []Chain {
	var chains []Chain
	for _, poly := range mp {
		for _, ring := range poly {
			chains = append(chains, ChainFromRing(ring, width, moveType))
		}
	}
	return chains
}
