// Package geom defines the lowest-level spatial primitives shared by the
// rest of the slicing pipeline: 3-D vertices with the total order the
// triangle-tower algorithm sweeps over, indexed triangles, affine
// transforms, and axis-aligned bounding boxes.
//
// Nothing in this package knows about meshes-as-a-whole, layers, or
// polygons; it is the vocabulary every other package imports.
package geom
