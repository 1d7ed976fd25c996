package tower

import (
	"container/heap"

	"github.com/arcweld/slicecore/geom"
)

// Vertex is one event in the tower's sweep: the originating vertex index
// and coordinates, plus every ring fragment whose lowest endpoint is this
// vertex (already joined as far as possible in isolation).
type Vertex struct {
	Index     int
	Point     geom.Vertex
	Fragments []Ring
}

// vertexHeap is a min-heap of *Vertex ordered by the (Z, Y, X) total order,
// smallest popped first. It implements container/heap.Interface.
type vertexHeap []*Vertex

func (h vertexHeap) Len() int            { return len(h) }
func (h vertexHeap) Less(i, j int) bool  { return h[i].Point.Less(h[j].Point) }
func (h vertexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap) Push(x interface{}) { *h = append(*h, x.(*Vertex)) }
func (h *vertexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return v
}

var _ heap.Interface = (*vertexHeap)(nil)
