package polygon

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Segment is a straight 2D segment, the unit area fill and bridging passes
// clip against a slice's boundary.
type Segment struct{ A, B orb.Point }

// ClipSegment intersects seg against every ring of mp using the even-odd
// rule and returns the sub-segments of seg that lie inside mp, ordered from
// A to B. It is the primitive area-fill hatch lines and bridging spans use
// to turn an infinite fill line into chain-ready pieces, and needs no
// general polygon-polygon boolean machinery: a single line clipped against
// a polygon's edges is always just an interval problem along that line.
func ClipSegment(seg Segment, mp MultiPolygon) []Segment {
	dx, dy := seg.B[0]-seg.A[0], seg.B[1]-seg.A[1]
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return nil
	}

	var crossings []float64

	for _, poly := range mp {
		for _, ring := range poly {
			n := len(ring)
			for i := 0; i < n; i++ {
				p0, p1 := ring[i], ring[(i+1)%n]
				if t, ok := segSegParam(seg.A, seg.B, p0, p1); ok {
					crossings = append(crossings, t)
				}
			}
		}
	}
	if len(crossings) == 0 {
		mid := orb.Point{(seg.A[0] + seg.B[0]) / 2, (seg.A[1] + seg.B[1]) / 2}
		if pointInMultiPolygon(mid, mp) {
			return []Segment{seg}
		}
		return nil
	}

	sort.Float64s(crossings)
	deduped := crossings[:0]
	for i, t := range crossings {
		if i == 0 || t-deduped[len(deduped)-1] > 1e-9 {
			deduped = append(deduped, t)
		}
	}
	crossings = deduped

	bounds := append([]float64{0}, crossings...)
	bounds = append(bounds, 1)

	var out []Segment
	for i := 0; i+1 < len(bounds); i++ {
		t0, t1 := bounds[i], bounds[i+1]
		if t1-t0 < 1e-9 {
			continue
		}
		mt := (t0 + t1) / 2
		mid := orb.Point{seg.A[0] + mt*dx, seg.A[1] + mt*dy}
		if !pointInMultiPolygon(mid, mp) {
			continue
		}
		out = append(out, Segment{
			A: orb.Point{seg.A[0] + t0*dx, seg.A[1] + t0*dy},
			B: orb.Point{seg.A[0] + t1*dx, seg.A[1] + t1*dy},
		})
	}
	return out
}

// segSegParam returns the parameter t along a0-a1 where it crosses b0-b1,
// if they cross in the half-open interval [0,1) on the b segment (endpoints of
// the clip edge are tie-broken to the next edge to avoid double-counting a
// boundary vertex as two crossings).
func segSegParam(a0, a1, b0, b1 orb.Point) (float64, bool) {
	d1x, d1y := a1[0]-a0[0], a1[1]-a0[1]
	d2x, d2y := b1[0]-b0[0], b1[1]-b0[1]
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ex, ey := b0[0]-a0[0], b0[1]-a0[1]
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u >= 1 {
		return 0, false
	}
	return t, true
}

func pointInMultiPolygon(p orb.Point, mp MultiPolygon) bool {
	for _, poly := range mp {
		if len(poly) == 0 {
			continue
		}
		if !pointInRing(p, poly[0]) {
			continue
		}
		inHole := false
		for _, hole := range poly[1:] {
			if pointInRing(p, hole) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}
