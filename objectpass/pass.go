package objectpass

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

// ObjectPass runs once per object, over that object's whole slice stack.
type ObjectPass func(ctx context.Context, objects []*slicemodel.Object, st *settings.Settings, cb callbacks.Callbacks) error

// SupportTowerPass accumulates each object's support-required region
// (§4.D). Walking top to bottom, each lower slice's SupportPolygon becomes
// the union of the slice above's SupportPolygon with that slice's
// overhang — the part of the slice above's main polygon not covered by
// this slice's main polygon grown by tan(max_overhang_angle)*layer_height.
func SupportTowerPass(ctx context.Context, objects []*slicemodel.Object, st *settings.Settings, cb callbacks.Callbacks) error {
	if !st.Support.Enabled {
		return nil
	}
	cb.StateUpdate("Generating Support Towers")
	angle := st.Support.MaxOverhangAngle * math.Pi / 180

	return workpool.Each(ctx, 0, objects, func(_ context.Context, obj *slicemodel.Object) error {
		for q := len(obj.Slices) - 1; q >= 1; q-- {
			above := obj.Slices[q]
			layer := obj.Slices[q-1]

			grow := math.Tan(angle) * layer.Height()
			grown := polygon.Offset(layer.MainPolygon, -grow)
			overhang := polygon.Combine(above.MainPolygon, grown, polygon.Difference)
			layer.SupportPolygon = polygon.Combine(above.SupportPolygon, overhang, polygon.Union)
		}
		return nil
	})
}

// SkirtPass generates a closed outline per skirt layer on object[0],
// traced around the convex hull of every object's first skirt.layers
// slices (main polygon unioned with support polygon), offset outward by
// skirt.distance (§4.D).
func SkirtPass(ctx context.Context, objects []*slicemodel.Object, st *settings.Settings, cb callbacks.Callbacks) error {
	if !st.Skirt.Enabled || len(objects) == 0 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Skirt")

	n := st.Skirt.Layers
	var combined polygon.MultiPolygon
	for _, obj := range objects {
		for i := 0; i < n && i < len(obj.Slices); i++ {
			s := obj.Slices[i]
			combined = polygon.Combine(combined, polygon.Combine(s.MainPolygon, s.SupportPolygon, polygon.Union), polygon.Union)
		}
	}
	if len(combined) == 0 {
		return nil
	}

	hull := convexHull(combined)
	if len(hull) == 0 {
		return nil
	}
	grown := polygon.Offset(polygon.MultiPolygon{{hull}}, -st.Skirt.Distance)
	if len(grown) == 0 {
		return nil
	}
	outline := grown[0][0]

	first := objects[0]
	width := st.ExtrusionWidth.Get(slicemodel.Travel)
	for i := 0; i < n && i < len(first.Slices); i++ {
		first.Slices[i].SkirtOutline = []slicemodel.Chain{slicemodel.ChainFromRing(outline, width, slicemodel.Travel)}
	}
	return nil
}

// BrimPass generates brim_width/line_width concentric outward offsets
// around the union of every object's first-layer contour, stored on
// object[0]'s first slice (§4.D). The reference implementation's brim
// source polygon includes an accidental self-duplication of the first
// object's rings (SPEC_FULL.md RECOVERED FEATURES); this implements the
// documented behavior directly instead.
func BrimPass(ctx context.Context, objects []*slicemodel.Object, st *settings.Settings, cb callbacks.Callbacks) error {
	if st.BrimWidth == nil || len(objects) == 0 {
		return nil
	}
	cb.StateUpdate("Generating Moves: Brim")

	var union polygon.MultiPolygon
	for _, obj := range objects {
		if len(obj.Slices) == 0 {
			continue
		}
		union = polygon.Combine(union, obj.Slices[0].MainPolygon, polygon.Union)
	}

	lineWidth := st.ExtrusionWidth.Get(slicemodel.ExteriorSurfacePerimeter)
	if lineWidth <= 0 {
		return nil
	}
	loops := int(math.Floor(*st.BrimWidth/lineWidth + 1e-9))

	first := objects[0].Slices[0]
	var chains []slicemodel.Chain
	for i := 1; i <= loops; i++ {
		offsetDist := -(float64(i) * lineWidth)
		ring := polygon.Offset(union, offsetDist)
		chains = append(chains, slicemodel.ChainsFromMultiPolygon(ring, lineWidth, slicemodel.ExteriorSurfacePerimeter)...)
	}
	first.BrimOutline = chains
	return nil
}

// convexHull flattens mp's ring points into a point cloud and returns the
// enclosing hull as a ring.
func convexHull(mp polygon.MultiPolygon) orb.Ring {
	var points orb.MultiPoint
	for _, poly := range mp {
		for _, ring := range poly {
			points = append(points, ring...)
		}
	}
	if len(points) == 0 {
		return nil
	}
	return polygon.ConvexHull(points)
}
