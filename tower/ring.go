package tower

import "fmt"

// ElementKind distinguishes the two tagged variants a RingElement can hold.
type ElementKind uint8

const (
	// ElemEdge marks a RingElement as an Edge{StartIndex,EndIndex}.
	ElemEdge ElementKind = iota
	// ElemFace marks a RingElement as a Face{TriangleIndex}.
	ElemFace
)

// RingElement is one link of a TowerRing: either an Edge between two vertex
// indices or a Face identified by triangle index. Rings alternate Edge and
// Face elements.
//
// Ordering: all Edges sort before all Faces; among Edges, lexicographic on
// (StartIndex, EndIndex); among Faces, by TriangleIndex. Equality mirrors
// ordering: Edges compare by endpoints, Faces by triangle index.
type RingElement struct {
	Kind          ElementKind
	StartIndex    int
	EndIndex      int
	TriangleIndex int
}

// Edge constructs an Edge RingElement.
func Edge(start, end int) RingElement {
	return RingElement{Kind: ElemEdge, StartIndex: start, EndIndex: end}
}

// Face constructs a Face RingElement.
func Face(triangleIndex int) RingElement {
	return RingElement{Kind: ElemFace, TriangleIndex: triangleIndex}
}

// Less implements the total order used to sort fragments for joining.
func (e RingElement) Less(o RingElement) bool {
	if e.Kind != o.Kind {
		return e.Kind == ElemEdge
	}
	if e.Kind == ElemFace {
		return e.TriangleIndex < o.TriangleIndex
	}
	if e.StartIndex != o.StartIndex {
		return e.StartIndex < o.StartIndex
	}
	return e.EndIndex < o.EndIndex
}

// Equal reports whether e and o denote the same edge or the same face.
func (e RingElement) Equal(o RingElement) bool {
	if e.Kind != o.Kind {
		return false
	}
	if e.Kind == ElemFace {
		return e.TriangleIndex == o.TriangleIndex
	}
	return e.StartIndex == o.StartIndex && e.EndIndex == o.EndIndex
}

func (e RingElement) String() string {
	if e.Kind == ElemFace {
		return fmt.Sprintf("F%d", e.TriangleIndex)
	}
	return fmt.Sprintf("E%d->%d", e.StartIndex, e.EndIndex)
}

// Ring is a finite sequence of RingElements alternating Edge and Face,
// starting with one and ending with the other — or, once joined into a
// complete cycle, starting and ending with the same Edge.
type Ring []RingElement

// IsComplete reports whether r is a closed cyclic ring: its first and last
// elements are equal and it has more than three elements.
func (r Ring) IsComplete() bool {
	if len(r) <= 3 {
		return false
	}
	return r[0].Equal(r[len(r)-1])
}

// clone returns a copy of r backed by a fresh array.
func (r Ring) clone() Ring {
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// joinInPlace extends first with every element of second after its first
// (the shared seam element is not duplicated), returning the extended ring.
func joinInPlace(first, second Ring) Ring {
	return append(first, second[1:]...)
}

// splitOnVertex cuts r wherever an Edge element ends at vertexIndex,
// producing zero or more open fragments. r is assumed to be a complete
// cyclic ring (or, for a fragment already split, treated as linear); the
// trailing fragment after the last cut is folded into the first fragment
// to preserve the wraparound of the original cycle. Fragments left with a
// single element (a lone Face with its vertex consumed) are dropped.
func splitOnVertex(r Ring, vertexIndex int) []Ring {
	var current Ring
	var frags []Ring

	for _, e := range r {
		if e.Kind == ElemEdge && e.EndIndex == vertexIndex {
			frags = append(frags, current)
			current = nil
		} else {
			current = append(current, e)
		}
	}

	if len(frags) == 0 {
		frags = append(frags, current)
	} else if len(frags[0]) == 0 {
		frags[0] = current
	} else {
		merged := append(append(Ring{}, current...), frags[0][1:]...)
		frags[0] = merged
	}

	out := frags[:0]
	for _, f := range frags {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}
