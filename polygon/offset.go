package polygon

import (
	"math"

	"github.com/paulmach/orb"
)

// miterLimit caps how far a convex-corner's offset intersection point may
// travel from its source vertex, expressed as a multiple of the offset
// distance; corners that would miter further are beveled instead.
const miterLimit = 4.0

// OffsetRing moves every edge of ring along its own outward normal by
// -distance and reconnects consecutive offset edges at their intersection
// (a miter join, beveled past miterLimit). distance is signed relative to
// ring's own winding: a positive distance always shrinks the solid area the
// ring bounds (grows a hole, shrinks an outer boundary), so a whole
// MultiPolygon can be offset by applying the same signed distance to every
// ring regardless of whether it is an outer boundary or a hole.
func OffsetRing(ring orb.Ring, distance float64) (orb.Ring, error) {
	n := len(ring)
	if n < 3 {
		return nil, ErrDegenerateLoop
	}

	type line struct{ a, b orb.Point }
	shifted := make([]line, n)
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		dx, dy := p1[0]-p0[0], p1[1]-p0[1]
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			continue
		}
		nx, ny := dy/length, -dx/length // outward normal for CCW traversal
		shifted[i] = line{
			a: orb.Point{p0[0] - distance*nx, p0[1] - distance*ny},
			b: orb.Point{p1[0] - distance*nx, p1[1] - distance*ny},
		}
	}

	out := make(orb.Ring, n)
	for i := 0; i < n; i++ {
		prev := shifted[(i-1+n)%n]
		cur := shifted[i]
		pt, ok := lineIntersection(prev.a, prev.b, cur.a, cur.b)
		if !ok || math.Hypot(pt[0]-ring[i][0], pt[1]-ring[i][1]) > miterLimit*math.Abs(distance) {
			// Parallel or over-long miter: bevel using the shifted
			// endpoint nearest the source vertex instead.
			pt = cur.a
		}
		out[i] = pt
	}

	if out.Orientation() != ring.Orientation() {
		return nil, ErrOffsetCollapsed
	}
	return out, nil
}

// lineIntersection returns the intersection point of infinite lines p1-p2
// and p3-p4, and false if they are parallel.
func lineIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	x1, y1, x2, y2 := p1[0], p1[1], p2[0], p2[1]
	x3, y3, x4, y4 := p3[0], p3[1], p4[0], p4[1]

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-12 {
		return orb.Point{}, false
	}
	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom
	return orb.Point{px, py}, true
}

// Offset applies OffsetRing to every ring of mp, dropping (without error)
// any ring that collapses under the requested distance — a normal outcome
// when shrinking thin features past their own width.
func Offset(mp MultiPolygon, distance float64) MultiPolygon {
	var out MultiPolygon
	for _, poly := range mp {
		var np orb.Polygon
		for _, ring := range poly {
			r, err := OffsetRing(ring, distance)
			if err != nil {
				continue
			}
			np = append(np, r)
		}
		if len(np) > 0 {
			out = append(out, np)
		}
	}
	return out
}
