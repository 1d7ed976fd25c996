package tower

import "errors"

// ErrNonManifold indicates the iterator found an open (non-cyclic) active
// ring after a join pass: the mesh is not manifold at the requested height.
var ErrNonManifold = errors.New("tower: non-manifold mesh at requested height")

// ErrVertexIndexOutOfRange indicates a triangle referenced a vertex index
// outside the supplied vertex array.
var ErrVertexIndexOutOfRange = errors.New("tower: triangle references out-of-range vertex index")

// errEmptyRing describes an empty ring, which a well-formed tower never
// holds; nothing in the package returns or panics with it.
var errEmptyRing = errors.New("tower: ring has no elements")
