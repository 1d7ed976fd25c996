package geom

import (
	"fmt"
	"math"
)

// Vertex is a point in 3-space. The zero value is the origin.
type Vertex struct {
	X, Y, Z float64
}

// NewVertex constructs a Vertex, panicking if any coordinate is non-finite.
// Non-finite coordinates are a precondition violation per the data model:
// callers that load vertices from untrusted sources must validate first.
func NewVertex(x, y, z float64) Vertex {
	v := Vertex{X: x, Y: y, Z: z}
	if !v.Finite() {
		panic(fmt.Sprintf("geom: non-finite vertex (%g, %g, %g)", x, y, z))
	}
	return v
}

// Finite reports whether every coordinate of v is finite (no NaN/Inf).
func (v Vertex) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Less implements the total order the tower sweep relies on: lexicographic
// on (Z, Y, X). Two vertices at the same point compare equal (neither Less).
func (v Vertex) Less(o Vertex) bool {
	if v.Z != o.Z {
		return v.Z < o.Z
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// Equal reports coordinate-wise equality (no tolerance).
func (v Vertex) Equal(o Vertex) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Add returns the component-wise sum of v and o.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Lerp linearly interpolates between a and b at fraction f (0 at a, 1 at b).
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// LineZIntersection returns the point where segment (start, end) crosses the
// horizontal plane z. Both endpoints must straddle z (start.Z != end.Z);
// callers that feed a ring edge guaranteed to span the plane (the tower
// iterator's invariant) never hit the start.Z == end.Z division by zero.
func LineZIntersection(z float64, start, end Vertex) Vertex {
	t := (z - start.Z) / (end.Z - start.Z)
	return Vertex{
		X: Lerp(start.X, end.X, t),
		Y: Lerp(start.Y, end.Y, t),
		Z: z,
	}
}

// IndexedTriangle is a triangle as three indices into a mesh's vertex slice.
// Winding order is not relied upon anywhere in the slicing algorithm.
type IndexedTriangle struct {
	Verts [3]int
}

// AABB is an axis-aligned bounding box. Its zero value has no volume and
// looks the same as a degenerate single-point box at the origin; callers
// that need to tell them apart track whether they have seen any vertex yet.
type AABB struct {
	Min, Max Vertex
}

// NewAABB returns an AABB containing exactly the single point v.
func NewAABB(v Vertex) AABB {
	return AABB{Min: v, Max: v}
}

// Extend grows the box to also contain v, returning the updated box.
func (b AABB) Extend(v Vertex) AABB {
	return AABB{
		Min: Vertex{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)},
		Max: Vertex{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)},
	}
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

// Transform is a 4x4 affine transform applied to Vertex values in
// homogeneous coordinates (row-major, last row implicitly [0 0 0 1]).
type Transform [4][4]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a transform that translates by (x, y, z).
func Translation(x, y, z float64) Transform {
	t := Identity()
	t[0][3] = x
	t[1][3] = y
	t[2][3] = z
	return t
}

// Apply transforms v by t.
func (t Transform) Apply(v Vertex) Vertex {
	return Vertex{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2]*v.Z + t[0][3],
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2]*v.Z + t[1][3],
		Z: t[2][0]*v.X + t[2][1]*v.Y + t[2][2]*v.Z + t[2][3],
	}
}
