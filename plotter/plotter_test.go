package plotter_test

import (
	"testing"

	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/plotter"
	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func square(side float64) polygon.MultiPolygon {
	ring := orb.Ring{{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0}}
	return polygon.MultiPolygon{{ring}}
}

func sliceWithPerimeter(t *testing.T, layerIndex int, width float64) *slicemodel.Slice {
	t.Helper()
	s, err := slicemodel.NewSlice(layerIndex, float64(layerIndex)*0.2, float64(layerIndex+1)*0.2, square(10))
	require.NoError(t, err)
	s.OuterPerimeters = []slicemodel.Chain{
		slicemodel.ChainFromRing(orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, width, slicemodel.ExteriorSurfacePerimeter),
	}
	return s
}

func TestPlotEmitsLayerChangeOncePerSlice(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.Speed.ExteriorSurfacePerimeter = 40
	obj := slicemodel.NewObject(0, []*slicemodel.Slice{
		sliceWithPerimeter(t, 0, 0.4),
		sliceWithPerimeter(t, 1, 0.4),
	})

	cmds := plotter.New(st).Plot([]*slicemodel.Object{obj})

	var layerChanges int
	for _, c := range cmds {
		if c.Kind == command.LayerChangeKind {
			layerChanges++
		}
	}
	require.Equal(t, 2, layerChanges)
}

func TestPlotEmitsChangeObjectPerObjectPerLayer(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	objA := slicemodel.NewObject(0, []*slicemodel.Slice{sliceWithPerimeter(t, 0, 0.4)})
	objB := slicemodel.NewObject(1, []*slicemodel.Slice{sliceWithPerimeter(t, 0, 0.4)})

	cmds := plotter.New(st).Plot([]*slicemodel.Object{objA, objB})

	var objectIDs []int
	for _, c := range cmds {
		if c.Kind == command.ChangeObjectKind {
			objectIDs = append(objectIDs, c.ObjectID)
		}
	}
	require.Equal(t, []int{0, 1}, objectIDs)
}

func TestPlotMoveAndExtrudeStartsWherePreviousEnded(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	obj := slicemodel.NewObject(0, []*slicemodel.Slice{sliceWithPerimeter(t, 0, 0.4)})

	cmds := plotter.New(st).Plot([]*slicemodel.Object{obj})

	var lastEnd orb.Point
	haveEnd := false
	for _, c := range cmds {
		switch c.Kind {
		case command.MoveAndExtrudeKind, command.ArcKind:
			if haveEnd {
				require.Equal(t, lastEnd, c.Start)
			}
			lastEnd, haveEnd = c.End, true
		case command.MoveToKind:
			lastEnd, haveEnd = c.End, true
		}
	}
}

func TestPlotRetractsWhenTravelExceedsMinimumDistance(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.MinimumRetractDistance = 0.5

	s1 := sliceWithPerimeter(t, 0, 0.4)
	s1.OuterPerimeters = append(s1.OuterPerimeters,
		slicemodel.ChainFromRing(orb.Ring{{50, 50}, {60, 50}, {60, 60}, {50, 60}, {50, 50}}, 0.4, slicemodel.ExteriorSurfacePerimeter))
	obj := slicemodel.NewObject(0, []*slicemodel.Slice{s1})

	cmds := plotter.New(st).Plot([]*slicemodel.Object{obj})

	var sawRetract bool
	for _, c := range cmds {
		if c.Kind == command.SetStateKind && c.State.Retract != nil && c.State.Retract.Kind == command.Retract {
			sawRetract = true
		}
	}
	require.True(t, sawRetract)
}
