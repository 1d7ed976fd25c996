// Package settings is the frozen snapshot of every tunable the pipeline
// reads: global Settings plus an ordered list of per-LayerRange overlays
// that LayerSettings resolves into a per-layer effective record.
//
// What: Settings/LayerRange/PartialLayerSettings types, validation against
// the rules the external settings loader cannot enforce on its own (range
// checks that depend on other fields, e.g. skirt distance vs brim width),
// and the per-layer overlay resolution the slicing driver and slice passes
// call once per layer.
//
// Why here and not in the (external) settings loader: the loader's job —
// parsing a hierarchical text config into a PartialSettings and merging it
// — is explicitly out of scope (§6); this package only resolves an already
// fully-merged Settings plus its LayerRange overlays, which is core pipeline
// behavior every pass depends on.
//
// Determinism: ResolveLayer is a pure fold over the matching overlays in
// list order; validation never mutates its input.
package settings
