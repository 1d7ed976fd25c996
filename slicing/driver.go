package slicing

import (
	"context"
	"errors"

	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/arcweld/slicecore/slicererr"
	"github.com/arcweld/slicecore/tower"
	"github.com/arcweld/slicecore/workpool"
)

// layerPoints is one collected (bottom_z, top_z, loops) tuple from the
// sequential iterator walk, before the parallel polygon-assembly step.
type layerPoints struct {
	bottomZ, topZ float64
	loops         [][]geom.Vertex
}

// walkTower drives tower.Iterator sequentially from z=0, advancing by half
// a layer before sampling and half a layer after (so the cutting plane
// passes through the middle of each layer, §4.C), stopping as soon as a
// sampled height yields no loops — the tower has no more geometry above
// that point.
func walkTower(t *tower.TriangleTower, base *settings.Settings) ([]layerPoints, error) {
	it := tower.NewIterator(t)

	var out []layerPoints
	z := 0.0
	for layerIdx := 0; ; layerIdx++ {
		layerHeight := settings.ResolveLayer(base, layerIdx, z, z).LayerHeight

		bottomZ := z
		z += layerHeight / 2
		if err := it.AdvanceToHeight(z); err != nil {
			if errors.Is(err, tower.ErrNonManifold) {
				return nil, &slicererr.TowerGeneration{Height: z}
			}
			return nil, err
		}
		z += layerHeight / 2
		topZ := z

		loops := it.GetPoints()
		if len(loops) == 0 {
			break
		}
		out = append(out, layerPoints{bottomZ: bottomZ, topZ: topZ, loops: loops})

		if it.IsFinished() {
			break
		}
	}
	return out, nil
}

// BuildObjects builds one slicemodel.Object per tower, fully parallel
// across towers (§5.1) and, within a tower, parallel across the
// polygon-assembly step once the sequential iterator walk has published
// its (bottom, top, loops) tuples (§4.C, §9). Object IDs follow the
// towers' input order. workers <= 0 uses workpool.DefaultWorkers.
func BuildObjects(ctx context.Context, workers int, towers []*tower.TriangleTower, base *settings.Settings) ([]*slicemodel.Object, error) {
	type indexed struct {
		id    int
		tower *tower.TriangleTower
	}
	items := make([]indexed, len(towers))
	for i, t := range towers {
		items[i] = indexed{id: i, tower: t}
	}

	return workpool.Map(ctx, workers, items, func(ctx context.Context, it indexed) (*slicemodel.Object, error) {
		points, err := walkTower(it.tower, base)
		if err != nil {
			return nil, err
		}

		type indexedPoints struct {
			idx int
			lp  layerPoints
		}
		indexedItems := make([]indexedPoints, len(points))
		for i, lp := range points {
			indexedItems[i] = indexedPoints{idx: i, lp: lp}
		}

		slices, err := workpool.Map(ctx, workers, indexedItems, func(_ context.Context, item indexedPoints) (*slicemodel.Slice, error) {
			mp, err := polygon.FromLoops(item.lp.loops)
			if err != nil {
				return nil, err
			}
			return slicemodel.NewSlice(item.idx, item.lp.bottomZ, item.lp.topZ, mp)
		})
		if err != nil {
			return nil, err
		}

		return slicemodel.NewObject(it.id, slices), nil
	})
}
