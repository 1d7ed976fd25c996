// Package slicepass implements §4.E's nine per-layer passes — Shrink,
// Perimeters, Bridging, TopLayer, TopAndBottomLayers, Support,
// LightningFill, FillArea, OrderChains — plus the composition shape the
// reference pipeline builds them with.
//
// Grounded on the reference's SlicePass trait, its ChainedPass combinator,
// and the Vec<Box<dyn SlicePass>> blanket ObjectPass impl
// (gladius_core/src/slice_pass.rs): SlicePass here is a single-method
// interface, Func is the http.HandlerFunc-style adapter that lets a plain
// function satisfy it, ChainedPass composes two passes exactly the way the
// reference's chain() does, and List is the slice-of-interfaces adapter
// that runs every pass in order over one object's slices — the Go shape of
// "Vec<Box<dyn SlicePass>> implements ObjectPass".
//
// Fill-producing passes (Bridging, TopLayer, TopAndBottomLayers, Support,
// FillArea) share one scanline hatch-fill core (hatch.go) since the
// retrieved corpus has no ready-made infill library — a from-scratch
// algorithm here is the same move the corpus makes for its own
// from-scratch cores, not a deviation from it.
package slicepass
