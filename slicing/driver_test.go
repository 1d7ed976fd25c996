package slicing_test

import (
	"context"
	"testing"

	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicing"
	"github.com/arcweld/slicecore/tower"
	"github.com/stretchr/testify/require"
)

// tetrahedron mirrors the tower package's test fixture: a right tetrahedron
// with its base in the z=0 plane and apex at (0,0,1).
func tetrahedron() ([]geom.Vertex, []geom.IndexedTriangle) {
	verts := []geom.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	tris := []geom.IndexedTriangle{
		{Verts: [3]int{0, 1, 2}},
		{Verts: [3]int{0, 1, 3}},
		{Verts: [3]int{1, 2, 3}},
		{Verts: [3]int{2, 0, 3}},
	}
	return verts, tris
}

func TestBuildObjectsProducesAscendingLayers(t *testing.T) {
	verts, tris := tetrahedron()
	tw, err := tower.BuildTower(verts, tris)
	require.NoError(t, err)

	base := settings.NewSettings(0.25, 0.4, 10, 10, 10)

	objects, err := slicing.BuildObjects(context.Background(), 2, []*tower.TriangleTower{tw}, base)
	require.NoError(t, err)
	require.Len(t, objects, 1)

	obj := objects[0]
	require.Greater(t, obj.LayerCount(), 1)
	for i := 1; i < obj.LayerCount(); i++ {
		require.Less(t, obj.Slices[i-1].TopHeight, obj.Slices[i].TopHeight)
	}
}
