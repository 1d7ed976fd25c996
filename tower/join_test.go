package tower

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ringSlidingEqual reports whether two complete rings describe the same
// cycle up to rotation (their closing element repeated, so length-1
// rotations are the meaningful ones).
func ringSlidingEqual(t *testing.T, lhs, rhs Ring) {
	t.Helper()
	if len(lhs) != len(rhs) {
		t.Fatalf("rings have different lengths: %v vs %v", lhs, rhs)
	}
	n := len(lhs) - 1
	for shift := 0; shift < n; shift++ {
		equal := true
		for w := 0; w < n; w++ {
			if !rhs[w].Equal(lhs[(w+shift)%n]) {
				equal = false
				break
			}
		}
		if equal {
			return
		}
	}
	t.Fatalf("rings are not rotations of each other: %v vs %v", lhs, rhs)
}

func TestJoinRingsInPlace(t *testing.T) {
	r1 := Ring{Edge(0, 1), Face(0), Edge(0, 2)}
	r2 := Ring{Edge(0, 2), Face(2), Edge(4, 6)}
	joined := joinInPlace(append(Ring{}, r1...), r2)
	expected := Ring{Edge(0, 1), Face(0), Edge(0, 2), Face(2), Edge(4, 6)}
	require.Equal(t, expected, joined)
}

func TestSplitOnEdge(t *testing.T) {
	r1 := Ring{Edge(0, 1), Face(0), Edge(0, 2), Face(2), Edge(0, 1)}
	frags := splitOnVertex(r1, 2)
	require.Len(t, frags, 1)
	ringSlidingEqual(t, frags[0], Ring{Face(2), Edge(0, 1), Face(0)})
}

func TestJoinFragmentsSimple(t *testing.T) {
	frags := []Ring{
		{Edge(0, 1), Face(0), Edge(0, 2), Face(2), Edge(4, 6)},
		{Edge(4, 6), Face(2), Edge(0, 1)},
	}
	joined := joinFragments(frags)
	require.Len(t, joined, 1)
	expected := Ring{Edge(0, 1), Face(0), Edge(0, 2), Face(2), Edge(4, 6), Face(2), Edge(0, 1)}
	ringSlidingEqual(t, joined[0], expected)
	require.True(t, joined[0].IsComplete())
}

func TestJoinFragmentsMultipleRings(t *testing.T) {
	frags := []Ring{
		{Edge(0, 1), Face(0)},
		{Face(0), Edge(0, 2), Face(1)},
		{Face(1), Edge(0, 3)},
		{Edge(0, 3), Face(4)},
		{Face(4), Edge(0, 1)},
		{Edge(0, 11), Face(10)},
		{Face(10), Edge(0, 12), Face(11)},
		{Face(11), Edge(0, 11)},
	}
	joined := joinFragments(frags)
	require.Len(t, joined, 2)
	for _, r := range joined {
		require.True(t, r.IsComplete())
	}
}
