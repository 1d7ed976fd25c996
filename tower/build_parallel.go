package tower

import (
	"context"

	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/workpool"
)

// Mesh is one input model: its vertex array and indexed triangles, as
// handed off by the (external) mesh-loader interface.
type Mesh struct {
	Vertices  []geom.Vertex
	Triangles []geom.IndexedTriangle
}

// BuildAll builds one TriangleTower per mesh, fully in parallel: tower
// construction for one mesh never touches another mesh's data. workers <= 0
// uses workpool.DefaultWorkers.
func BuildAll(ctx context.Context, workers int, meshes []Mesh) ([]*TriangleTower, error) {
	return workpool.Map(ctx, workers, meshes, func(_ context.Context, m Mesh) (*TriangleTower, error) {
		return BuildTower(m.Vertices, m.Triangles)
	})
}
