package slicererr_test

import (
	"errors"
	"testing"

	"github.com/arcweld/slicecore/slicererr"
	"github.com/stretchr/testify/require"
)

func TestBoundsErrorDiscriminatesWithErrorsAs(t *testing.T) {
	var err error = &slicererr.BoundsError{Axis: slicererr.AxisX, Value: -1, Limit: 100, Subject: "mesh"}
	var be *slicererr.BoundsError
	require.True(t, errors.As(err, &be))
	require.Equal(t, slicererr.AxisX, be.Axis)
}

func TestSinkErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := &slicererr.SinkError{Err: inner}
	require.ErrorIs(t, err, inner)
}
