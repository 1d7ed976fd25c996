// Package objectpass implements §4.D's cross-layer, per-object passes:
// SupportTowerPass (accumulates each object's support-required region by
// walking its slice stack top to bottom), SkirtPass, and BrimPass. All
// three run before any per-slice pass in slicepass, since skirt and brim
// need every object's first slice and support needs the whole stack before
// per-layer fill can use SupportPolygon.
//
// Grounded on the reference's ObjectPass trait and its three
// implementations (gladius_core/src/slice_pass.rs); this repo keeps the
// single-method capability shape (an ObjectPass is one func over the full
// object slice) but drops the reference's accidental self-duplication in
// BrimPass's source polygon (documented in SPEC_FULL.md) in favor of the
// plainly-stated union of first-layer contours.
package objectpass
