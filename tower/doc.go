// Package tower implements the triangle-tower slicing algorithm: building,
// per mesh, an event-ordered heap of vertices that lets a horizontal plane
// be swept upward in Z while only ever touching the part of the mesh near
// the current height.
//
// # Shape
//
//   - A TriangleTower holds the mesh's vertex array and a min-heap of
//     Vertex records, ordered by the vertex's (Z, Y, X) total order.
//   - Each Vertex carries the ring fragments whose lowest endpoint is
//     that vertex — an alternating Edge/Face sequence describing the part
//     of the vertex's link that faces upward.
//   - An Iterator consumes the heap: AdvanceToHeight pops every
//     vertex below the target height, splits the active rings on the
//     popped vertex's edges, folds in that vertex's own fragments, and
//     rejoins everything into (ideally) complete cyclic rings.
//
// # Why a heap of events instead of a recursive sweep
//
// Popping by total-ordered vertex makes all ring surgery local to the
// popped vertex, and the iterator itself need not understand triangles —
// only edges and faces already assigned to vertices by BuildTower. This is
// what lets slice-polygon assembly run in parallel once the (bottom, top,
// loops) tuples have been published by the (necessarily sequential)
// iterator: see the slicing package.
//
// # Non-manifold detection
//
// If, after a join pass, any active ring is not a complete cycle (first
// element equal to last, length > 3), the mesh is non-manifold at that
// height and AdvanceToHeight returns ErrNonManifold.
package tower
