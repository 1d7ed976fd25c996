package polygon

import (
	"math"

	"github.com/paulmach/orb"
)

// Operation selects which boolean combination CombineRings/Combine computes.
type Operation int

const (
	Union Operation = iota
	Intersection
	Difference // subject minus clip
)

// intersectEdges returns the interior crossing parameter of segment
// (a0,a1) against segment (b0,b1), if one exists strictly inside both
// segments. Touches at or near an endpoint are ignored (reported as no
// crossing) — a deliberate simplification documented at package level.
func intersectEdges(a0, a1, b0, b1 orb.Point) (pt orb.Point, ta, tb float64, ok bool) {
	const eps = 1e-9
	d1x, d1y := a1[0]-a0[0], a1[1]-a0[1]
	d2x, d2y := b1[0]-b0[0], b1[1]-b0[1]
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return orb.Point{}, 0, 0, false
	}
	ex, ey := b0[0]-a0[0], b0[1]-a0[1]
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return orb.Point{}, 0, 0, false
	}
	return orb.Point{a0[0] + t*d1x, a0[1] + t*d1y}, t, u, true
}

type gnode struct {
	p        orb.Point
	isect    bool
	entry    bool
	id       int
	neighbor int // index into the other list, valid when isect
}

func insertIntersections(ring orb.Ring, hits map[int][]hit) []gnode {
	var out []gnode
	n := len(ring)
	for i := 0; i < n; i++ {
		out = append(out, gnode{p: ring[i]})
		edgeHits := hits[i]
		for _, h := range edgeHits {
			out = append(out, gnode{p: h.pt, isect: true, id: h.id})
		}
	}
	return out
}

type hit struct {
	pt    orb.Point
	param float64
	id    int
}

// CombineRings computes the boolean op of two simple, hole-free rings and
// returns the result as outer rings paired with any hole it produces (only
// the direct-containment case below ever produces a hole; crossing cases
// yield hole-free outer rings, a documented scope limit of this
// from-scratch core).
func CombineRings(subject, clip orb.Ring, op Operation) orb.MultiPolygon {
	var crossings []struct {
		subjEdge, clipEdge   int
		subjParam, clipParam float64
		pt                   orb.Point
	}
	for i := 0; i < len(subject); i++ {
		a0, a1 := subject[i], subject[(i+1)%len(subject)]
		for j := 0; j < len(clip); j++ {
			b0, b1 := clip[j], clip[(j+1)%len(clip)]
			if pt, t, u, ok := intersectEdges(a0, a1, b0, b1); ok {
				crossings = append(crossings, struct {
					subjEdge, clipEdge   int
					subjParam, clipParam float64
					pt                   orb.Point
				}{i, j, t, u, pt})
			}
		}
	}

	if len(crossings) == 0 {
		return combineDisjointOrNested(subject, clip, op)
	}

	subjHits := map[int][]hit{}
	clipHits := map[int][]hit{}
	for id, c := range crossings {
		subjHits[c.subjEdge] = append(subjHits[c.subjEdge], hit{pt: c.pt, param: c.subjParam, id: id})
		clipHits[c.clipEdge] = append(clipHits[c.clipEdge], hit{pt: c.pt, param: c.clipParam, id: id})
	}
	for k := range subjHits {
		sortHits(subjHits[k])
	}
	for k := range clipHits {
		sortHits(clipHits[k])
	}

	subjNodes := insertIntersections(subject, subjHits)
	clipNodes := insertIntersections(clip, clipHits)

	subjPosByID := map[int]int{}
	clipPosByID := map[int]int{}
	for i, n := range subjNodes {
		if n.isect {
			subjPosByID[n.id] = i
		}
	}
	for i, n := range clipNodes {
		if n.isect {
			clipPosByID[n.id] = i
		}
	}
	for i, n := range subjNodes {
		if n.isect {
			subjNodes[i].neighbor = clipPosByID[n.id]
		}
	}
	for i, n := range clipNodes {
		if n.isect {
			clipNodes[i].neighbor = subjPosByID[n.id]
		}
	}

	markEntries(subjNodes, clip)
	markEntries(clipNodes, subject)

	var subjForward, clipForward func(entry bool) bool
	switch op {
	case Union:
		subjForward = func(e bool) bool { return !e }
		clipForward = func(e bool) bool { return !e }
	case Difference:
		subjForward = func(e bool) bool { return e }
		clipForward = func(e bool) bool { return !e }
	default: // Intersection
		subjForward = func(e bool) bool { return e }
		clipForward = func(e bool) bool { return e }
	}

	visited := make([]bool, len(crossings))
	var rings []orb.Ring
	for startID := 0; startID < len(crossings); startID++ {
		if visited[startID] {
			continue
		}
		var contour orb.Ring
		onSubj := true
		idx := subjPosByID[startID]
		id := startID
		for {
			visited[id] = true
			var nodes []gnode
			var forward func(bool) bool
			if onSubj {
				nodes = subjNodes
				forward = subjForward
			} else {
				nodes = clipNodes
				forward = clipForward
			}
			fwd := forward(nodes[idx].entry)
			for {
				if fwd {
					idx = (idx + 1) % len(nodes)
				} else {
					idx = (idx - 1 + len(nodes)) % len(nodes)
				}
				contour = append(contour, nodes[idx].p)
				if nodes[idx].isect {
					break
				}
			}
			id = nodes[idx].id
			visited[id] = true
			if id == startID {
				break
			}
			if onSubj {
				idx = nodes[idx].neighbor
			} else {
				idx = nodes[idx].neighbor
			}
			onSubj = !onSubj
		}
		if len(contour) >= 3 {
			rings = append(rings, contour)
		}
	}

	var mp orb.MultiPolygon
	for _, r := range rings {
		oriented := orientRing(r, true)
		mp = append(mp, orb.Polygon{oriented})
	}
	return mp
}

func sortHits(hits []hit) {
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].param < hits[j-1].param; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}

// markEntries walks nodes (a ring with intersection vertices already
// spliced in) and sets, for every intersection node, whether continuing
// forward past it moves into other's interior.
func markEntries(nodes []gnode, other orb.Ring) {
	if len(nodes) == 0 {
		return
	}
	inside := pointInRing(nodes[0].p, other)
	for i := range nodes {
		if nodes[i].isect {
			inside = !inside
			nodes[i].entry = inside
		}
	}
}

// combineDisjointOrNested handles the no-crossing case: subject and clip
// are either fully disjoint or one fully contains the other.
func combineDisjointOrNested(subject, clip orb.Ring, op Operation) orb.MultiPolygon {
	clipInSubj := len(clip) > 0 && pointInRing(clip[0], subject)
	subjInClip := len(subject) > 0 && pointInRing(subject[0], clip)

	switch {
	case clipInSubj:
		switch op {
		case Union:
			return orb.MultiPolygon{{orientRing(subject, true)}}
		case Intersection:
			return orb.MultiPolygon{{orientRing(clip, true)}}
		default: // Difference: subject minus clip leaves a hole
			return orb.MultiPolygon{{orientRing(subject, true), orientRing(clip, false)}}
		}
	case subjInClip:
		switch op {
		case Union:
			return orb.MultiPolygon{{orientRing(clip, true)}}
		case Intersection:
			return orb.MultiPolygon{{orientRing(subject, true)}}
		default: // subject fully consumed by clip
			return orb.MultiPolygon{}
		}
	default: // disjoint
		switch op {
		case Union:
			return orb.MultiPolygon{{orientRing(subject, true)}, {orientRing(clip, true)}}
		case Intersection:
			return orb.MultiPolygon{}
		default:
			return orb.MultiPolygon{{orientRing(subject, true)}}
		}
	}
}

func outerRings(mp MultiPolygon) []orb.Ring {
	var rings []orb.Ring
	for _, poly := range mp {
		if len(poly) > 0 {
			rings = append(rings, poly[0])
		}
	}
	return rings
}

// Combine computes op across the outer rings of a and b. Existing holes in
// a and b are not preserved through the combination — only their outer
// silhouettes participate, and Difference keeps a hole only when a single
// clip ring is fully nested inside a single subject ring — which is
// sufficient for the top/bottom-surface and support-mask differencing this
// module uses it for.
func Combine(a, b MultiPolygon, op Operation) MultiPolygon {
	subjRings := outerRings(a)
	clipRings := outerRings(b)

	switch op {
	case Intersection:
		var out MultiPolygon
		for _, s := range subjRings {
			for _, c := range clipRings {
				result := CombineRings(s, c, Intersection)
				out = append(out, result...)
			}
		}
		return out

	case Difference:
		var out MultiPolygon
		for _, s := range subjRings {
			pieces := orb.MultiPolygon{{s}}
			for _, c := range clipRings {
				var next MultiPolygon
				for _, piece := range pieces {
					if len(piece) == 0 {
						continue
					}
					next = append(next, CombineRings(piece[0], c, Difference)...)
				}
				pieces = next
				if len(pieces) == 0 {
					break
				}
			}
			out = append(out, pieces...)
		}
		return out

	default: // Union
		all := append(append([]orb.Ring{}, subjRings...), clipRings...)
		return ringsToMultiPolygon(unionAll(all))
	}
}

func ringsToMultiPolygon(rings []orb.Ring) MultiPolygon {
	var out MultiPolygon
	for _, r := range rings {
		out = append(out, orb.Polygon{r})
	}
	return out
}

// unionAll repeatedly merges any two rings that intersect or nest until no
// further merge is possible, leaving a set of mutually disjoint rings.
func unionAll(rings []orb.Ring) []orb.Ring {
	for {
		merged := false
		for i := 0; i < len(rings) && !merged; i++ {
			for j := i + 1; j < len(rings) && !merged; j++ {
				result := CombineRings(rings[i], rings[j], Union)
				if len(result) == 1 {
					rest := make([]orb.Ring, 0, len(rings)-1)
					for k, r := range rings {
						if k != i && k != j {
							rest = append(rest, r)
						}
					}
					rings = append(rest, result[0][0])
					merged = true
				}
			}
		}
		if !merged {
			return rings
		}
	}
}
