package polygon

import (
	"sort"

	"github.com/arcweld/slicecore/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MultiPolygon is the cross-section shape of one slice: zero or more outer
// rings, each with zero or more holes. It is a thin name over orb's own
// type so the rest of the module never has to import orb directly for the
// common case.
type MultiPolygon = orb.MultiPolygon

// Area returns the net signed area of mp: outer rings add, holes subtract.
// A well-formed MultiPolygon (outer CCW, holes CW) therefore always yields a
// non-negative total.
func Area(mp MultiPolygon) float64 {
	var total float64
	for _, poly := range mp {
		for i, ring := range poly {
			a := planar.Area(ring)
			if i == 0 {
				total += absf(a)
			} else {
				total -= absf(a)
			}
		}
	}
	return total
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// ringFromLoop converts one closed loop of 3D tower vertices (constant Z,
// first point repeated as last) into a 2D orb.Ring, dropping the duplicated
// closing point that orb.Ring does not expect.
func ringFromLoop(loop []geom.Vertex) (orb.Ring, error) {
	n := len(loop)
	if n > 1 && loop[0].Equal(loop[n-1]) {
		n--
	}
	if n < 3 {
		return nil, ErrDegenerateLoop
	}
	ring := make(orb.Ring, n)
	for i := 0; i < n; i++ {
		ring[i] = orb.Point{loop[i].X, loop[i].Y}
	}
	return ring, nil
}

// pointInRing reports whether p lies inside ring using the standard
// even-odd ray-casting test. Points on the boundary may report either way;
// callers only use this for containment ranking between disjoint loops
// produced by the tower, which never share boundary points.
func pointInRing(p orb.Point, ring orb.Ring) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi[1] > p[1]) != (pj[1] > p[1]) {
			slope := (pj[0]-pi[0])*(p[1]-pi[1])/(pj[1]-pi[1]) + pi[0]
			if p[0] < slope {
				inside = !inside
			}
		}
	}
	return inside
}

// FromLoops assembles the unordered set of closed loops produced by one
// tower-iterator height step into a well-formed MultiPolygon: loops are
// nested by point-in-ring containment depth (even depth = a new outer
// boundary, odd depth = a hole of its nearest enclosing loop), and every
// ring's winding is corrected to the conventional outer-CCW/hole-CW
// orientation regardless of how the tower happened to wind it.
func FromLoops(loops [][]geom.Vertex) (MultiPolygon, error) {
	rings := make([]orb.Ring, 0, len(loops))
	for _, loop := range loops {
		r, err := ringFromLoop(loop)
		if err != nil {
			return nil, err
		}
		rings = append(rings, r)
	}
	if len(rings) == 0 {
		return MultiPolygon{}, nil
	}

	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for i := range parent {
		parent[i] = -1
	}
	for i, ri := range rings {
		probe := ri[0]
		bestParent, bestDepth := -1, -1
		for j, rj := range rings {
			if i == j {
				continue
			}
			if pointInRing(probe, rj) {
				d := containDepth(rings, j)
				if d > bestDepth {
					bestDepth = d
					bestParent = j
				}
			}
		}
		depth[i] = bestDepth + 1
		parent[i] = bestParent
	}

	outerIdx := map[int]int{} // ring index -> polygon index in result
	var result MultiPolygon
	order := make([]int, len(rings))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return depth[order[a]] < depth[order[b]] })

	for _, i := range order {
		ring := orientRing(rings[i], depth[i]%2 == 0)
		if depth[i]%2 == 0 {
			outerIdx[i] = len(result)
			result = append(result, orb.Polygon{ring})
			continue
		}
		p := parent[i]
		for p != -1 && depth[p]%2 != 0 {
			p = parent[p]
		}
		polyIdx, ok := outerIdx[p]
		if !ok {
			// No enclosing outer ring was found (degenerate nesting); treat
			// this ring as its own outer boundary rather than drop it.
			outerIdx[i] = len(result)
			result = append(result, orb.Polygon{orientRing(rings[i], true)})
			continue
		}
		result[polyIdx] = append(result[polyIdx], ring)
	}
	return result, nil
}

func containDepth(rings []orb.Ring, idx int) int {
	depth := 0
	probe := rings[idx][0]
	for j, rj := range rings {
		if j == idx {
			continue
		}
		if pointInRing(probe, rj) {
			depth++
		}
	}
	return depth
}

func orientRing(r orb.Ring, wantCCW bool) orb.Ring {
	out := make(orb.Ring, len(r))
	copy(out, r)
	isCCW := out.Orientation() == orb.CCW
	if isCCW != wantCCW {
		reverseRing(out)
	}
	return out
}

func reverseRing(r orb.Ring) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// ConvexHull computes the convex hull of points via Andrew's monotone
// chain, returning a CCW ring with no repeated closing point. Collinear
// runs are dropped (cross == 0 pops the middle point), so the result's
// vertices are all strict turns. Duplicate input points are tolerated:
// they simply fail to extend either chain.
func ConvexHull(points orb.MultiPoint) orb.Ring {
	pts := make(orb.MultiPoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	n := len(pts)
	if n < 3 {
		out := make(orb.Ring, n)
		for i, p := range pts {
			out[i] = p
		}
		return out
	}

	cross := func(o, a, b orb.Point) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	lower := make(orb.Ring, 0, n)
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make(orb.Ring, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
