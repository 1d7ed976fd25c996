package polygon

import (
	"testing"

	"github.com/arcweld/slicecore/geom"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func loopFromXY(pts [][2]float64) []geom.Vertex {
	loop := make([]geom.Vertex, len(pts)+1)
	for i, p := range pts {
		loop[i] = geom.Vertex{X: p[0], Y: p[1], Z: 1}
	}
	loop[len(pts)] = loop[0]
	return loop
}

func square(x0, y0, side float64) orb.Ring {
	return orb.Ring{
		{x0, y0}, {x0 + side, y0}, {x0 + side, y0 + side}, {x0, y0 + side},
	}
}

func TestOffsetRingShrinksSquareInward(t *testing.T) {
	r := square(0, 0, 10)
	shrunk, err := OffsetRing(r, 1)
	require.NoError(t, err)
	require.InDelta(t, 64, areaOf(shrunk), 1e-6)
}

func areaOf(r orb.Ring) float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func TestCombineRingsUnionOfOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 0, 10)
	result := CombineRings(a, b, Union)
	require.Len(t, result, 1)
	require.InDelta(t, 150, areaOf(result[0][0]), 1e-6)
}

func TestCombineRingsIntersectionOfOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 0, 10)
	result := CombineRings(a, b, Intersection)
	require.Len(t, result, 1)
	require.InDelta(t, 50, areaOf(result[0][0]), 1e-6)
}

func TestCombineRingsDisjointSquares(t *testing.T) {
	a := square(0, 0, 5)
	b := square(100, 100, 5)
	require.Empty(t, CombineRings(a, b, Intersection))
	require.Len(t, CombineRings(a, b, Union), 2)
}

func TestCombineRingsNestedDifferenceLeavesHole(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(2, 2, 2)
	result := CombineRings(outer, inner, Difference)
	require.Len(t, result, 1)
	require.Len(t, result[0], 2)
}

func TestConvexHullDropsInteriorPoint(t *testing.T) {
	pts := orb.MultiPoint{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5},
	}
	hull := ConvexHull(pts)
	require.Len(t, hull, 4)
	require.InDelta(t, 100, areaOf(hull), 1e-6)
}

func TestConvexHullOfTriangleIsUnchanged(t *testing.T) {
	pts := orb.MultiPoint{{0, 0}, {4, 0}, {0, 3}}
	hull := ConvexHull(pts)
	require.Len(t, hull, 3)
	require.InDelta(t, 6, areaOf(hull), 1e-6)
}

func TestFromLoopsClassifiesHoleByNesting(t *testing.T) {
	outerLoop := loopFromXY([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	innerLoop := loopFromXY([][2]float64{{2, 2}, {2, 4}, {4, 4}, {4, 2}})

	mp, err := FromLoops([][]geom.Vertex{outerLoop, innerLoop})
	require.NoError(t, err)
	require.Len(t, mp, 1)
	require.Len(t, mp[0], 2)
}
