package slicepass

import (
	"math"
	"sort"

	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/paulmach/orb"
)

// hatchFill rasterizes mp into a set of open Chains, each one straight line
// segment, by scanning parallel lines spacing apart at the given angle
// (radians, measured from the X axis) and connecting alternate boundary
// crossings. This is the module's own from-scratch fill core — the
// retrieved corpus has no infill library to wire in here.
func hatchFill(mp polygon.MultiPolygon, spacing, angle float64, moveType slicemodel.MoveType, width float64) []slicemodel.Chain {
	if spacing <= 0 || len(mp) == 0 {
		return nil
	}

	cosA, sinA := math.Cos(angle), math.Sin(angle)
	toHatch := func(p orb.Point) orb.Point {
		return orb.Point{p[0]*cosA + p[1]*sinA, -p[0]*sinA + p[1]*cosA}
	}
	fromHatch := func(p orb.Point) orb.Point {
		return orb.Point{p[0]*cosA - p[1]*sinA, p[0]*sinA + p[1]*cosA}
	}

	var rotated polygon.MultiPolygon
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, poly := range mp {
		var rp orb.Polygon
		for _, ring := range poly {
			rr := make(orb.Ring, len(ring))
			for i, pt := range ring {
				rr[i] = toHatch(pt)
				if rr[i][1] < minY {
					minY = rr[i][1]
				}
				if rr[i][1] > maxY {
					maxY = rr[i][1]
				}
			}
			rp = append(rp, rr)
		}
		rotated = append(rotated, rp)
	}
	if math.IsInf(minY, 1) {
		return nil
	}

	var chains []slicemodel.Chain
	for y := minY + spacing/2; y < maxY; y += spacing {
		xs := scanlineCrossings(rotated, y)
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := fromHatch(orb.Point{xs[i], y})
			end := fromHatch(orb.Point{xs[i+1], y})
			chains = append(chains, slicemodel.NewChain(start, []slicemodel.Move{slicemodel.NewMove(end, width, moveType)}, false))
		}
	}
	return chains
}

// scanlineCrossings returns the unsorted X crossings of every ring in mp
// against the horizontal line y, using the standard even-odd edge test.
func scanlineCrossings(mp polygon.MultiPolygon, y float64) []float64 {
	var xs []float64
	for _, poly := range mp {
		for _, ring := range poly {
			n := len(ring)
			for i := 0; i < n; i++ {
				a, b := ring[i], ring[(i+1)%n]
				if (a[1] <= y) != (b[1] <= y) {
					t := (y - a[1]) / (b[1] - a[1])
					xs = append(xs, a[0]+t*(b[0]-a[0]))
				}
			}
		}
	}
	return xs
}

// boundsOf returns the axis-aligned extent of every point in mp.
func boundsOf(mp polygon.MultiPolygon) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, poly := range mp {
		for _, ring := range poly {
			for _, p := range ring {
				if p[0] < minX {
					minX = p[0]
				}
				if p[0] > maxX {
					maxX = p[0]
				}
				if p[1] < minY {
					minY = p[1]
				}
				if p[1] > maxY {
					maxY = p[1]
				}
			}
		}
	}
	return
}

// hatchAngleForRegion aligns fill lines with a region's longer axis —
// an approximation of "aligned with the longest unsupported span" (§4.E.3)
// using the region's bounding box instead of searching its actual span.
func hatchAngleForRegion(mp polygon.MultiPolygon) float64 {
	minX, minY, maxX, maxY := boundsOf(mp)
	if (maxY - minY) > (maxX - minX) {
		return math.Pi / 2
	}
	return 0
}

// infillAngle maps a fill pattern and layer index to a hatch angle,
// rotating between a pattern's characteristic set of directions every
// layer so consecutive layers cross instead of stacking in register.
func infillAngle(pattern settings.InfillPattern, layerIndex int) float64 {
	switch pattern {
	case settings.Rectilinear, settings.Linear:
		if layerIndex%2 == 0 {
			return 0
		}
		return math.Pi / 2
	case settings.Triangle:
		return float64(layerIndex%3) * math.Pi / 3
	case settings.Cubic:
		return float64(layerIndex%3) * math.Pi / 3
	default:
		return math.Pi / 4 * float64(layerIndex%2)
	}
}
