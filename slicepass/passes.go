package slicepass

import (
	"context"
	"math"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/arcweld/slicecore/workpool"
	"github.com/paulmach/orb"
)

// Shrink insets every slice's main polygon by layer_shrink_amount, if set
// (§4.E.1).
var Shrink SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	if st.LayerShrinkAmount == nil {
		return nil
	}
	cb.StateUpdate("Generating Moves: Shrink Layers")
	amount := *st.LayerShrinkAmount
	return workpool.Each(ctx, 0, slices, func(_ context.Context, s *slicemodel.Slice) error {
		s.MainPolygon = polygon.Offset(s.MainPolygon, amount)
		return nil
	})
})

// Perimeters produces number_of_perimeters concentric inward offsets of
// each slice's main polygon: the outermost loop's rings get the surface
// perimeter types and every further loop's rings the inner types, and
// within a loop a ring on an outer boundary gets the exterior variant and
// a hole ring the interior variant (§4.E.2).
var Perimeters SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	n := st.NumberOfPerimeters
	if n <= 0 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Perimeters")
	return workpool.Each(ctx, 0, slices, func(_ context.Context, s *slicemodel.Slice) error {
		surfaceWidth := st.ExtrusionWidth.ExteriorSurfacePerimeter
		innerWidth := st.ExtrusionWidth.InteriorInnerPerimeter
		var outer, inner []slicemodel.Chain
		for i := 0; i < n; i++ {
			var dist float64
			if i == 0 {
				dist = surfaceWidth / 2
			} else {
				dist = surfaceWidth/2 + float64(i)*innerWidth
			}
			loop := polygon.Offset(s.MainPolygon, dist)
			if len(loop) == 0 {
				break
			}
			if i == 0 {
				outer = append(outer, classifyPerimeterRings(loop, slicemodel.ExteriorSurfacePerimeter, slicemodel.InteriorSurfacePerimeter, surfaceWidth)...)
			} else {
				inner = append(inner, classifyPerimeterRings(loop, slicemodel.ExteriorInnerPerimeter, slicemodel.InteriorInnerPerimeter, innerWidth)...)
			}
		}
		s.OuterPerimeters = outer
		s.InnerPerimeters = inner
		return nil
	})
})

// classifyPerimeterRings tags an outer-boundary ring (index 0 of a
// polygon) with outerType and a hole ring with innerType.
func classifyPerimeterRings(mp polygon.MultiPolygon, outerType, innerType slicemodel.MoveType, width float64) []slicemodel.Chain {
	var chains []slicemodel.Chain
	for _, poly := range mp {
		for ringIdx, ring := range poly {
			t := outerType
			if ringIdx > 0 {
				t = innerType
			}
			chains = append(chains, slicemodel.ChainFromRing(ring, width, t))
		}
	}
	return chains
}

// Bridging fills the part of slice k's main polygon not covered by slice
// k-1's (k >= 1) with parallel lines aligned to the region's longer axis
// (§4.E.3).
var Bridging SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	width := st.ExtrusionWidth.Get(slicemodel.Bridging)
	if width <= 0 || len(slices) < 2 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Bridging")

	indices := make([]int, 0, len(slices)-1)
	for k := 1; k < len(slices); k++ {
		indices = append(indices, k)
	}
	return workpool.Each(ctx, 0, indices, func(_ context.Context, k int) error {
		region := polygon.Combine(slices[k].MainPolygon, slices[k-1].MainPolygon, polygon.Difference)
		angle := hatchAngleForRegion(region)
		slices[k].Bridges = hatchFill(region, width, angle, slicemodel.Bridging, width)
		return nil
	})
})

// TopLayer marks the part of slice k's main polygon not covered by slice
// k+1's as top-exposed solid infill (k < n-1) (§4.E.4).
var TopLayer SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	width := st.ExtrusionWidth.Get(slicemodel.TopSolidInfill)
	if width <= 0 || len(slices) < 2 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Top Layer")

	indices := make([]int, 0, len(slices)-1)
	for k := 0; k < len(slices)-1; k++ {
		indices = append(indices, k)
	}
	return workpool.Each(ctx, 0, indices, func(_ context.Context, k int) error {
		region := polygon.Combine(slices[k].MainPolygon, slices[k+1].MainPolygon, polygon.Difference)
		slices[k].TopSolid = append(slices[k].TopSolid, hatchFill(region, width, 0, slicemodel.TopSolidInfill, width)...)
		return nil
	})
})

// TopAndBottomLayers forces solid infill near the top and bottom of the
// stack: layers within bottom_layers of the floor or top_layers of the
// ceiling are completely solid; interior layers are solid only where they
// aren't shared by every nearby top-window and bottom-window layer
// (§4.E.5). When both windows are zero, the tie-break is no forced solid.
var TopAndBottomLayers SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	width := st.ExtrusionWidth.Get(slicemodel.SolidInfill)
	n := len(slices)
	if width <= 0 || n == 0 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Above and below support")
	bottom, top := st.BottomLayers, st.TopLayers

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return workpool.Each(ctx, 0, indices, func(_ context.Context, k int) error {
		s := slices[k]
		if k < bottom || k >= n-top {
			s.SolidInfill = hatchFill(s.MainPolygon, width, 0, slicemodel.SolidInfill, width)
			return nil
		}

		var below, above polygon.MultiPolygon
		haveBelow, haveAbove := bottom > 0, top > 0
		if haveBelow {
			below = slices[k-bottom].MainPolygon
			for j := k - bottom + 1; j <= k; j++ {
				below = polygon.Combine(below, slices[j].MainPolygon, polygon.Intersection)
			}
		}
		if haveAbove {
			above = slices[k+1].MainPolygon
			for j := k + 2; j <= k+top; j++ {
				above = polygon.Combine(above, slices[j].MainPolygon, polygon.Intersection)
			}
		}

		var mask polygon.MultiPolygon
		switch {
		case !haveAbove && !haveBelow:
			return nil
		case haveAbove && !haveBelow:
			mask = above
		case haveBelow && !haveAbove:
			mask = below
		default:
			mask = polygon.Combine(above, below, polygon.Intersection)
		}

		region := polygon.Combine(s.MainPolygon, mask, polygon.Difference)
		s.SolidInfill = hatchFill(region, width, 0, slicemodel.SolidInfill, width)
		return nil
	})
})

// Support fills each slice's accumulated SupportPolygon (§4.D) with
// parallel lines at support.support_spacing, and traces its outline
// (§4.E.6).
var Support SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	if !st.Support.Enabled {
		return nil
	}
	cb.StateUpdate("Generating Moves: Support")
	width := st.ExtrusionWidth.Get(slicemodel.Support)
	spacing := st.Support.SupportSpacing
	return workpool.Each(ctx, 0, slices, func(_ context.Context, s *slicemodel.Slice) error {
		if len(s.SupportPolygon) == 0 {
			return nil
		}
		s.SupportOutline = slicemodel.ChainsFromMultiPolygon(s.SupportPolygon, width, slicemodel.Support)
		s.SupportFill = hatchFill(s.SupportPolygon, spacing, 0, slicemodel.Support, width)
		return nil
	})
})

// FillArea fills what remains inside the inner perimeters of each slice —
// after perimeters, top/bottom solid, bridging and support have each
// claimed their share — as partial infill, at infill_percentage density
// with the pattern selected by partial_infill_type (§4.E.8). The fill
// boundary is the main polygon inset by the total perimeter band
// (exterior half-width plus every inner loop's width), then expanded back
// outward by infill_perimeter_overlap_percentage of the infill line width
// so fill lines lap into the innermost perimeter instead of stopping short
// of it. When the pattern is Lightning, this pass is a no-op:
// LightningFill already claimed the region it wants to fill, and the
// remaining gaps are intentional.
var FillArea SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	if st.PartialInfillType == settings.Lightning {
		return nil
	}
	width := st.ExtrusionWidth.Get(slicemodel.Infill)
	if width <= 0 || st.InfillPercentage <= 0 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Fill Areas")

	spacing := width / st.InfillPercentage
	overlap := width * st.InfillOverlapPercent

	perimeterInset := 0.0
	if n := st.NumberOfPerimeters; n > 0 {
		surfaceWidth := st.ExtrusionWidth.ExteriorSurfacePerimeter
		innerWidth := st.ExtrusionWidth.InteriorInnerPerimeter
		perimeterInset = surfaceWidth/2 + float64(n-1)*innerWidth
	}
	boundaryInset := perimeterInset - overlap

	return workpool.Each(ctx, 0, slices, func(_ context.Context, s *slicemodel.Slice) error {
		boundary := polygon.Offset(s.MainPolygon, boundaryInset)
		claimed := unionClaimedRegions(s)
		region := polygon.Combine(boundary, claimed, polygon.Difference)
		angle := infillAngle(st.PartialInfillType, s.LayerIndex)
		s.PartialInfill = hatchFill(region, spacing, angle, slicemodel.Infill, width)
		return nil
	})
})

func unionClaimedRegions(s *slicemodel.Slice) polygon.MultiPolygon {
	var claimed polygon.MultiPolygon
	for _, chains := range [][]slicemodel.Chain{s.TopSolid, s.SolidInfill, s.Bridges, s.SupportFill} {
		for _, ch := range chains {
			claimed = polygon.Combine(claimed, chainBounds(ch), polygon.Union)
		}
	}
	return claimed
}

// chainBounds approximates a fill chain's footprint as a thin rectangle
// along its one segment — enough to subtract an already-filled hatch line
// from the region a later pass considers unfilled.
func chainBounds(ch slicemodel.Chain) polygon.MultiPolygon {
	if len(ch.Moves) == 0 {
		return nil
	}
	a, b := ch.Start, ch.Moves[0].End
	dx, dy := b[0]-a[0], b[1]-a[1]
	length := dx*dx + dy*dy
	if length == 0 {
		return nil
	}
	nx, ny := -dy, dx
	norm := ch.Moves[0].Width / 2
	invLen := norm / math.Sqrt(length)
	nx, ny = nx*invLen, ny*invLen
	ring := orb.Ring{
		{a[0] + nx, a[1] + ny},
		{b[0] + nx, b[1] + ny},
		{b[0] - nx, b[1] - ny},
		{a[0] - nx, a[1] - ny},
		{a[0] + nx, a[1] + ny},
	}
	return polygon.MultiPolygon{{ring}}
}

// OrderChains gathers every populated chain collection on each slice into
// a single travel-minimized sequence: each next chain is the one whose
// start (or, for a closed chain, closest point) is nearest the previous
// chain's end, the first chain being the one nearest the origin. The
// category order (inner perimeters before outer when
// inner_perimeters_first is set) only decides between chains at equal
// distance (§4.E.9).
var OrderChains SlicePass = Func(func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	cb.StateUpdate("Generating Moves: Order Chains")
	return workpool.Each(ctx, 0, slices, func(_ context.Context, s *slicemodel.Slice) error {
		s.OrderedChains = orderSliceChains(s, st.InnerPerimetersFirst)
		return nil
	})
})

func orderSliceChains(s *slicemodel.Slice, innerFirst bool) []slicemodel.Chain {
	perimeterGroups := [][]slicemodel.Chain{s.OuterPerimeters, s.InnerPerimeters}
	if innerFirst {
		perimeterGroups[0], perimeterGroups[1] = perimeterGroups[1], perimeterGroups[0]
	}

	var pool []slicemodel.Chain
	for _, group := range [][]slicemodel.Chain{
		s.SkirtOutline, s.BrimOutline,
		perimeterGroups[0], perimeterGroups[1],
		s.SolidInfill, s.PartialInfill, s.TopSolid, s.Bridges,
		s.SupportOutline, s.SupportFill,
	} {
		pool = append(pool, group...)
	}
	if len(pool) == 0 {
		return nil
	}

	ordered := make([]slicemodel.Chain, 0, len(pool))
	used := make([]bool, len(pool))
	current := orb.Point{}
	for range pool {
		best, bestDist := -1, 0.0
		for i, c := range pool {
			if used[i] {
				continue
			}
			candidate := c.RotatedToClosest(current)
			d := sqDistPoints(candidate.Start, current)
			if best == -1 || d < bestDist {
				best, bestDist = i, d
				pool[i] = candidate
			}
		}
		used[best] = true
		ordered = append(ordered, pool[best])
		current = pool[best].End()
	}
	return ordered
}

func sqDistPoints(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}
