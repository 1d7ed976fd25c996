package slicepass

import (
	"context"
	"math"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/paulmach/orb"
)

// defaultLightningBranch and defaultLightningCoalesce are the fallbacks
// used when Settings.Lightning leaves either tunable at its zero value
// (§9 Open Questions: these were never exposed as settings in the
// reference, so a caller who does not set them gets the original
// hard-coded behavior instead of a degenerate reach/coalesce of zero).
const (
	defaultLightningBranch   = 8.0
	defaultLightningCoalesce = 2.0
)

// LightningFill builds a sparse support-like infill tree, active only
// when partial_infill_type is Lightning (§4.E.7): on every layer, the
// start point of each TopSolid chain (the top-exposed fill TopLayer
// produced, which lightning infill does not itself duplicate) seeds a new
// branch tip; each tip descends by
// connecting to the nearest active tip on the layer below within
// Settings.Lightning.ReachMultiple layer heights, and tips within
// Settings.Lightning.CoalesceMultiple layer heights of each other on the
// same layer merge. Every edge becomes one Infill move on the layer it
// spans.
var LightningFill SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	if st.PartialInfillType != settings.Lightning {
		return nil
	}
	cb.StateUpdate("Generating Moves: Lightning Infill")

	width := st.ExtrusionWidth.Get(slicemodel.Infill)
	if width <= 0 || len(slices) == 0 {
		return nil
	}
	branchMultiple := st.Lightning.ReachMultiple
	if branchMultiple <= 0 {
		branchMultiple = defaultLightningBranch
	}
	coalesceMultiple := st.Lightning.CoalesceMultiple
	if coalesceMultiple <= 0 {
		coalesceMultiple = defaultLightningCoalesce
	}
	maxReach := branchMultiple * st.LayerHeight
	coalesce := coalesceMultiple * st.LayerHeight

	var active []orb.Point
	for k := len(slices) - 1; k >= 0; k-- {
		s := slices[k]
		roots := topExposedSamplePoints(s)
		tips := append(append([]orb.Point{}, active...), roots...)
		tips = coalesceTips(tips, coalesce)

		var edges []slicemodel.Chain
		if k < len(slices)-1 {
			for _, tip := range tips {
				nearest, dist, ok := nearestPoint(tip, active)
				if ok && dist <= maxReach {
					edges = append(edges, slicemodel.NewChain(tip, []slicemodel.Move{slicemodel.NewMove(nearest, width, slicemodel.Infill)}, false))
				}
			}
		}
		s.PartialInfill = append(s.PartialInfill, edges...)
		active = tips
	}
	return nil
})

// topExposedSamplePoints samples the start point of every TopSolid chain
// on s as a new branch root for that layer.
func topExposedSamplePoints(s *slicemodel.Slice) []orb.Point {
	var pts []orb.Point
	for _, c := range s.TopSolid {
		pts = append(pts, c.Start)
	}
	return pts
}

func nearestPoint(p orb.Point, candidates []orb.Point) (orb.Point, float64, bool) {
	best, bestDist := orb.Point{}, math.Inf(1)
	found := false
	for _, c := range candidates {
		d := math.Hypot(p[0]-c[0], p[1]-c[1])
		if d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, bestDist, found
}

// coalesceTips merges points within threshold of each other, keeping the
// first of each cluster.
func coalesceTips(points []orb.Point, threshold float64) []orb.Point {
	var out []orb.Point
	for _, p := range points {
		merged := false
		for _, o := range out {
			if math.Hypot(p[0]-o[0], p[1]-o[1]) <= threshold {
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out
}
