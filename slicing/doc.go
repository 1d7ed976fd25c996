// Package slicing is the slicing driver of §4.C: per tower, it advances a
// tower.Iterator through successive layers (the plane cutting through the
// middle of each layer, per the two half-advances §4.C specifies), then
// assembles the collected point loops into slicemodel.Slice values.
//
// The iterator itself is strictly sequential per tower — its event heap is
// stateful (§5) — so BuildObjects runs that walk sequentially for each
// tower, then fans the independent polygon-construction step out over the
// collected (bottom_z, top_z, loops) tuples. Across towers, both steps run
// in parallel: one mesh's tower never touches another's data.
package slicing
