package slicemodel

import "github.com/arcweld/slicecore/polygon"

// Slice holds one layer's 2D cross-section and the chains the slice-pass
// pipeline populates on top of it, in the order §4.E runs: outer and inner
// perimeters (Perimeters), solid and partial infill and top solid
// (FillArea/TopLayer/TopAndBottomLayers), bridges (Bridging), and support
// outline/fill (Support). A freshly built Slice (straight out of the
// slicing driver) has MainPolygon set and every chain collection nil;
// passes append to exactly the collection they own and never touch
// another's.
type Slice struct {
	LayerIndex              int
	BottomHeight, TopHeight float64
	MainPolygon             polygon.MultiPolygon

	// SupportPolygon is the accumulated support-required region computed by
	// SupportTowerPass (§4.D). It is tracked separately from MainPolygon —
	// support is material the object does not print as part of its own
	// body — and is only ever populated on layers below an overhang.
	SupportPolygon polygon.MultiPolygon

	OuterPerimeters []Chain
	InnerPerimeters []Chain
	SolidInfill     []Chain
	PartialInfill   []Chain
	TopSolid        []Chain
	Bridges         []Chain
	SupportOutline  []Chain
	SupportFill     []Chain

	// SkirtOutline and BrimOutline are populated only on object[0]'s first
	// slice(s) by SkirtPass/BrimPass; every other slice leaves them nil.
	SkirtOutline []Chain
	BrimOutline  []Chain

	// OrderedChains is the travel-minimized sequence OrderChains (the last
	// slice pass, §4.E.9) produces from every populated collection above.
	// The plotter reads this when set and falls back to AllChains's fixed
	// category order otherwise, so a Slice built by tests without running
	// OrderChains is still plottable.
	OrderedChains []Chain
}

// NewSlice builds a Slice, enforcing the top_height > bottom_height
// invariant every later pass relies on.
func NewSlice(layerIndex int, bottomHeight, topHeight float64, mainPolygon polygon.MultiPolygon) (*Slice, error) {
	if topHeight <= bottomHeight {
		return nil, ErrInvalidHeightRange
	}
	return &Slice{
		LayerIndex:   layerIndex,
		BottomHeight: bottomHeight,
		TopHeight:    topHeight,
		MainPolygon:  mainPolygon,
	}, nil
}

// Height returns the slice's thickness, top_height minus bottom_height.
func (s *Slice) Height() float64 {
	return s.TopHeight - s.BottomHeight
}

// AllChains returns every populated chain collection concatenated, in the
// fixed category order the plotter falls back to when a slice has no
// OrderedChains: skirt outline, brim outline, outer perimeters, inner
// perimeters, solid infill, partial infill, top solid, bridges, support
// outline, support fill.
func (s *Slice) AllChains() []Chain {
	var all []Chain
	for _, group := range [][]Chain{
		s.SkirtOutline, s.BrimOutline,
		s.OuterPerimeters, s.InnerPerimeters, s.SolidInfill, s.PartialInfill,
		s.TopSolid, s.Bridges, s.SupportOutline, s.SupportFill,
	} {
		all = append(all, group...)
	}
	return all
}
