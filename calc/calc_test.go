package calc_test

import (
	"testing"

	"github.com/arcweld/slicecore/calc"
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicererr"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func baseSettings() *settings.Settings {
	s := settings.NewSettings(0.2, 0.4, 100, 100, 100)
	s.FilamentDiameter = 1.75
	s.FilamentDensity = 1.24
	s.Speed.Travel = 150
	return s
}

func TestCheckModelBoundsRejectsNegativeAxis(t *testing.T) {
	st := baseSettings()
	mesh := []geom.Vertex{{X: -1, Y: 0, Z: 0}, {X: 5, Y: 5, Z: 5}}
	err := calc.CheckModelBounds([][]geom.Vertex{mesh}, st)
	require.Error(t, err)
	var be *slicererr.BoundsError
	require.ErrorAs(t, err, &be)
	require.Equal(t, slicererr.AxisX, be.Axis)
}

func TestCheckModelBoundsAcceptsInRangeMesh(t *testing.T) {
	st := baseSettings()
	mesh := []geom.Vertex{{X: 1, Y: 1, Z: 1}, {X: 5, Y: 5, Z: 5}}
	require.NoError(t, calc.CheckModelBounds([][]geom.Vertex{mesh}, st))
}

func TestCheckMovesBoundsRejectsOutOfRangeEndpoint(t *testing.T) {
	st := baseSettings()
	cmds := []command.Command{
		command.LayerChange(0, 0),
		command.MoveAndExtrude(orb.Point{0, 0}, orb.Point{200, 0}, 0.4, 0.2),
	}
	err := calc.CheckMovesBounds(cmds, st)
	require.Error(t, err)
}

func TestCalculateIntegratesVolumeAndTime(t *testing.T) {
	st := baseSettings()
	speed := 50.0
	cmds := []command.Command{
		command.LayerChange(0.2, 0),
		command.SetState(command.StateChange{MovementSpeed: &speed}),
		command.MoveAndExtrude(orb.Point{0, 0}, orb.Point{10, 0}, 0.4, 0.2),
	}
	cv := calc.Calculate(cmds, st)
	require.Greater(t, cv.PlasticVolume, 0.0)
	require.InDelta(t, 10.0/50.0, cv.TotalTimeSeconds, 1e-9)
}
