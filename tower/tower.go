package tower

import (
	"container/heap"
	"math"

	"github.com/arcweld/slicecore/geom"
)

// TriangleTower is the event-ordered representation of one mesh used to
// drive an Iterator. Build one per mesh with BuildTower; it is
// consumed by exactly one iterator.
type TriangleTower struct {
	vertices []geom.Vertex
	events   *vertexHeap
}

// BuildTower constructs a TriangleTower from a mesh's vertex array and
// triangle list, per the tower-building algorithm: for every triangle edge
// (u, v), the edge/face fragment [Face(t), Edge(u,v)] (if u < v) or
// [Edge(v,u), Face(t)] (if v <= u) is attached to the lower-ordered
// endpoint. Fragments attached to the same vertex are joined as far as
// possible before the vertex is pushed onto the event heap.
func BuildTower(vertices []geom.Vertex, triangles []geom.IndexedTriangle) (*TriangleTower, error) {
	perVertex := make([][]Ring, len(vertices))

	for triIdx, tri := range triangles {
		for i := 0; i < 3; i++ {
			a := tri.Verts[i]
			b := tri.Verts[(i+1)%3]
			if a < 0 || a >= len(vertices) || b < 0 || b >= len(vertices) {
				return nil, ErrVertexIndexOutOfRange
			}

			if vertices[a].Less(vertices[b]) {
				perVertex[a] = append(perVertex[a], Ring{Face(triIdx), Edge(a, b)})
			} else {
				perVertex[b] = append(perVertex[b], Ring{Edge(b, a), Face(triIdx)})
			}
		}
	}

	events := make(vertexHeap, 0, len(vertices))
	for idx, frags := range perVertex {
		events = append(events, &Vertex{
			Index:     idx,
			Point:     vertices[idx],
			Fragments: joinFragments(frags),
		})
	}
	heap.Init(&events)

	return &TriangleTower{vertices: vertices, events: &events}, nil
}

// heightOfNextVertex returns the Z of the next unpopped event, or +Inf if
// the heap is empty.
func (t *TriangleTower) heightOfNextVertex() float64 {
	if t.events.Len() == 0 {
		return math.Inf(1)
	}
	return (*t.events)[0].Point.Z
}
