package settings

import "github.com/arcweld/slicecore/slicemodel"

// PerMoveType holds one float64 per MoveType category — the shape
// extrusion_width, speed and acceleration all share in §6.
type PerMoveType struct {
	TopSolidInfill           float64
	SolidInfill              float64
	Infill                   float64
	ExteriorSurfacePerimeter float64
	InteriorSurfacePerimeter float64
	ExteriorInnerPerimeter   float64
	InteriorInnerPerimeter   float64
	Bridging                 float64
	Support                  float64
	Travel                   float64
}

// Get returns the value for t, the lookup every pass performing a
// per-move-type computation goes through instead of a type switch.
func (p PerMoveType) Get(t slicemodel.MoveType) float64 {
	switch t {
	case slicemodel.TopSolidInfill:
		return p.TopSolidInfill
	case slicemodel.SolidInfill:
		return p.SolidInfill
	case slicemodel.Infill:
		return p.Infill
	case slicemodel.ExteriorSurfacePerimeter:
		return p.ExteriorSurfacePerimeter
	case slicemodel.InteriorSurfacePerimeter:
		return p.InteriorSurfacePerimeter
	case slicemodel.ExteriorInnerPerimeter:
		return p.ExteriorInnerPerimeter
	case slicemodel.InteriorInnerPerimeter:
		return p.InteriorInnerPerimeter
	case slicemodel.Bridging:
		return p.Bridging
	case slicemodel.Support:
		return p.Support
	case slicemodel.Travel:
		return p.Travel
	default:
		return 0
	}
}

// RetractWipe describes the optional wipe move appended after a retraction.
type RetractWipe struct {
	Speed, Acceleration, Distance float64
}

// Support holds the optional support-generation tunables.
type Support struct {
	Enabled           bool
	MaxOverhangAngle  float64 // degrees
	SupportSpacing    float64
}

// Skirt holds the optional skirt-generation tunables.
type Skirt struct {
	Enabled  bool
	Layers   int
	Distance float64
}

// LightningTuning holds the tree-infill tunables §9's Open Questions flags as
// not exposed in the source and recommends surfacing instead of hard-
// coding: how far (as a multiple of layer height) a branch tip may reach
// down to the layer below before it is considered unreachable, and how
// close (same units) two tips on one layer must be before they coalesce
// into a single branch. Zero values fall back to ReachMultiple=8,
// CoalesceMultiple=2, the constants the algorithm originally used.
type LightningTuning struct {
	ReachMultiple    float64
	CoalesceMultiple float64
}

// InfillPattern names a fill pattern, as selected by SolidInfillType and
// PartialInfillType.
type InfillPattern int

const (
	Linear InfillPattern = iota
	Rectilinear
	Triangle
	Cubic
	Lightning
)

// LayerRangeKind selects which of the three LayerRange shapes applies.
type LayerRangeKind int

const (
	SingleLayer LayerRangeKind = iota
	LayerCountRange
	HeightRange
)

// LayerRange names a closed interval of layers, by index or by height,
// inclusive at both ends, that a PartialLayerSettings overlay applies to.
type LayerRange struct {
	Kind       LayerRangeKind
	Index      int     // SingleLayer
	StartIndex int     // LayerCountRange
	EndIndex   int     // LayerCountRange
	StartHeight float64 // HeightRange
	EndHeight   float64 // HeightRange
}

// Contains reports whether layer k at height (bottomZ, topZ) falls inside r.
func (r LayerRange) Contains(k int, bottomZ, topZ float64) bool {
	switch r.Kind {
	case SingleLayer:
		return k == r.Index
	case LayerCountRange:
		return k >= r.StartIndex && k <= r.EndIndex
	case HeightRange:
		return bottomZ >= r.StartHeight && topZ <= r.EndHeight
	default:
		return false
	}
}

// PartialLayerSettings is an overlay: every field is a pointer so nil means
// "inherit from the base Settings (or an earlier, lower-priority overlay)".
type PartialLayerSettings struct {
	LayerHeight           *float64
	ExtrusionWidth         *PerMoveType
	NumberOfPerimeters     *int
	TopLayers              *int
	BottomLayers           *int
	InfillPercentage       *float64
	InfillOverlapPercent   *float64
	InnerPerimetersFirst   *bool
	LayerShrinkAmount      *float64
	SolidInfillType        *InfillPattern
	PartialInfillType      *InfillPattern
}

// LayerOverlay pairs a LayerRange with the overlay it applies.
type LayerOverlay struct {
	Range    LayerRange
	Settings PartialLayerSettings
}
