package slicemodel_test

import (
	"testing"

	"github.com/arcweld/slicecore/polygon"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/stretchr/testify/require"
)

func TestNewSliceRejectsZeroHeightRange(t *testing.T) {
	_, err := slicemodel.NewSlice(0, 1.0, 1.0, polygon.MultiPolygon{})
	require.ErrorIs(t, err, slicemodel.ErrInvalidHeightRange)
}

func TestNewObjectSortsSlicesByTopHeight(t *testing.T) {
	s0, _ := slicemodel.NewSlice(0, 0, 0.2, polygon.MultiPolygon{})
	s1, _ := slicemodel.NewSlice(1, 0.2, 0.4, polygon.MultiPolygon{})
	obj := slicemodel.NewObject(0, []*slicemodel.Slice{s1, s0})
	require.Equal(t, s0, obj.Slices[0])
	require.Equal(t, s1, obj.Slices[1])
	require.Nil(t, obj.Below(0))
	require.Equal(t, s1, obj.Above(0))
}

func TestMoveTypeIsPerimeter(t *testing.T) {
	require.True(t, slicemodel.ExteriorSurfacePerimeter.IsPerimeter())
	require.False(t, slicemodel.Infill.IsPerimeter())
}
