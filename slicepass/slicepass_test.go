package slicepass_test

import (
	"context"
	"testing"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/arcweld/slicecore/slicepass"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func square(side float64) polygon.MultiPolygon {
	ring := orb.Ring{{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0}}
	return polygon.MultiPolygon{{ring}}
}

func buildSlices(t *testing.T, sides []float64) []*slicemodel.Slice {
	t.Helper()
	slices := make([]*slicemodel.Slice, len(sides))
	for i, side := range sides {
		s, err := slicemodel.NewSlice(i, float64(i)*0.2, float64(i+1)*0.2, square(side))
		require.NoError(t, err)
		slices[i] = s
	}
	return slices
}

func TestShrinkInsetsWhenConfigured(t *testing.T) {
	amount := 0.5
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.LayerShrinkAmount = &amount
	slices := buildSlices(t, []float64{10})

	require.NoError(t, slicepass.Shrink.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.Less(t, polygon.Area(slices[0].MainPolygon), polygon.Area(square(10)))
}

func TestPerimetersProducesOuterAndInnerChains(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.ExteriorSurfacePerimeter = 0.4
	st.ExtrusionWidth.InteriorInnerPerimeter = 0.4
	st.NumberOfPerimeters = 3
	slices := buildSlices(t, []float64{10})

	require.NoError(t, slicepass.Perimeters.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.Len(t, slices[0].OuterPerimeters, 1)
	require.Len(t, slices[0].InnerPerimeters, 2)
}

func TestBridgingFillsUncoveredRegion(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.Bridging = 0.4
	// Layer 1 is wider than layer 0, so the overhang needs bridging.
	slices := buildSlices(t, []float64{5, 10})

	require.NoError(t, slicepass.Bridging.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.NotEmpty(t, slices[1].Bridges)
	require.Empty(t, slices[0].Bridges)
}

func TestTopLayerMarksExposedTop(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.TopSolidInfill = 0.4
	// Layer 0 is wider than layer 1, exposing its rim from above.
	slices := buildSlices(t, []float64{10, 5})

	require.NoError(t, slicepass.TopLayer.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.NotEmpty(t, slices[0].TopSolid)
}

func TestTopAndBottomLayersTieBreakNoForcedSolidWhenBothZero(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.SolidInfill = 0.4
	st.TopLayers = 0
	st.BottomLayers = 0
	slices := buildSlices(t, []float64{10, 10, 10, 10, 10})

	require.NoError(t, slicepass.TopAndBottomLayers.Pass(context.Background(), slices, st, callbacks.Silent{}))
	for _, s := range slices {
		require.Empty(t, s.SolidInfill)
	}
}

func TestTopAndBottomLayersForcesSolidNearFloorAndCeiling(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.SolidInfill = 0.4
	st.TopLayers = 1
	st.BottomLayers = 1
	slices := buildSlices(t, []float64{10, 10, 10, 10, 10})

	require.NoError(t, slicepass.TopAndBottomLayers.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.NotEmpty(t, slices[0].SolidInfill)
	require.NotEmpty(t, slices[len(slices)-1].SolidInfill)
}

func TestOrderChainsProducesOneSequencePerSlice(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.ExteriorSurfacePerimeter = 0.4
	st.ExtrusionWidth.InteriorInnerPerimeter = 0.4
	st.NumberOfPerimeters = 2
	slices := buildSlices(t, []float64{10})

	require.NoError(t, slicepass.Perimeters.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.NoError(t, slicepass.OrderChains.Pass(context.Background(), slices, st, callbacks.Silent{}))

	require.Len(t, slices[0].OrderedChains, len(slices[0].OuterPerimeters)+len(slices[0].InnerPerimeters))
}

func TestChainComposesPassesInOrder(t *testing.T) {
	st := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	st.ExtrusionWidth.ExteriorSurfacePerimeter = 0.4
	st.ExtrusionWidth.InteriorInnerPerimeter = 0.4
	st.NumberOfPerimeters = 1
	slices := buildSlices(t, []float64{10})

	combined := slicepass.Chain(slicepass.Perimeters, slicepass.OrderChains)
	require.NoError(t, combined.Pass(context.Background(), slices, st, callbacks.Silent{}))
	require.NotEmpty(t, slices[0].OrderedChains)
}
