// Package loader declares the mesh-loader boundary the pipeline depends on
// but never implements: parsing STL/3MF (or any other mesh format) into raw
// vertex/triangle arrays is explicitly out of scope (§6) — only the
// interface the tower builder consumes is defined here.
package loader
