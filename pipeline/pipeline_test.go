package pipeline_test

import (
	"context"
	"testing"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/pipeline"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicererr"
	"github.com/arcweld/slicecore/tower"
	"github.com/stretchr/testify/require"
)

// tetrahedronMesh mirrors the slicing package's test fixture: a right
// tetrahedron with its base in the z=0 plane and apex at (0,0,1).
func tetrahedronMesh() tower.Mesh {
	return tower.Mesh{
		Vertices: []geom.Vertex{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Triangles: []geom.IndexedTriangle{
			{Verts: [3]int{0, 1, 2}},
			{Verts: [3]int{0, 1, 3}},
			{Verts: [3]int{1, 2, 3}},
			{Verts: [3]int{2, 0, 3}},
		},
	}
}

func fullSettings() *settings.Settings {
	st := settings.NewSettings(0.25, 0.4, 10, 10, 10)
	st.FilamentDiameter = 1.75
	st.FilamentDensity = 1.24
	st.ExtruderTemp = 200
	st.BedTemp = 60
	st.MinimumRetractDistance = 5
	widths := settings.PerMoveType{
		TopSolidInfill: 0.4, SolidInfill: 0.4, Infill: 0.4,
		ExteriorSurfacePerimeter: 0.4, InteriorSurfacePerimeter: 0.4,
		ExteriorInnerPerimeter: 0.4, InteriorInnerPerimeter: 0.4,
		Bridging: 0.4, Support: 0.4,
	}
	st.ExtrusionWidth = widths
	st.Speed = settings.PerMoveType{
		TopSolidInfill: 40, SolidInfill: 40, Infill: 40,
		ExteriorSurfacePerimeter: 40, InteriorSurfacePerimeter: 40,
		ExteriorInnerPerimeter: 40, InteriorInnerPerimeter: 40,
		Bridging: 30, Support: 30, Travel: 120,
	}
	return st
}

type fakeSink struct {
	cmds []command.Command
}

func (f *fakeSink) Write(cmds []command.Command) error {
	f.cmds = cmds
	return nil
}

type recordingCallbacks struct {
	callbacks.Silent
	states     []string
	warnings   int
	calculated bool
	finished   bool
}

func (c *recordingCallbacks) StateUpdate(phase string)                       { c.states = append(c.states, phase) }
func (c *recordingCallbacks) HandleSettingsWarning(settings.Warning)         { c.warnings++ }
func (c *recordingCallbacks) HandleCalculatedValues(callbacks.CalculatedValues, *settings.Settings) {
	c.calculated = true
}
func (c *recordingCallbacks) HandleSliceFinished() { c.finished = true }

func TestRunProducesCommandsAndCalculatedValues(t *testing.T) {
	st := fullSettings()
	cb := &recordingCallbacks{}
	sink := &fakeSink{}

	_, err := pipeline.Run(context.Background(), 2, []tower.Mesh{tetrahedronMesh()}, st, cb, sink)
	require.NoError(t, err)

	require.NotEmpty(t, sink.cmds)
	require.True(t, cb.calculated)
	require.True(t, cb.finished)
	require.Contains(t, cb.states, "Slicing")
	require.Contains(t, cb.states, "Assembling Moves")

	var layerChanges int
	for _, c := range sink.cmds {
		if c.Kind == command.LayerChangeKind {
			layerChanges++
		}
	}
	require.Greater(t, layerChanges, 0)
}

func TestRunFailsWithBoundsErrorForOutOfRangeMesh(t *testing.T) {
	st := fullSettings()
	mesh := tetrahedronMesh()
	for i := range mesh.Vertices {
		mesh.Vertices[i].X -= 5
	}

	_, err := pipeline.Run(context.Background(), 0, []tower.Mesh{mesh}, st, callbacks.Silent{}, &fakeSink{})
	require.Error(t, err)
	var be *slicererr.BoundsError
	require.ErrorAs(t, err, &be)
	require.Equal(t, slicererr.AxisX, be.Axis)
}

func TestRunFailsWithSettingsErrorForInvalidSettings(t *testing.T) {
	st := settings.NewSettings(0.25, 0.4, 10, 10, 10) // FilamentDiameter left at zero

	_, err := pipeline.Run(context.Background(), 0, []tower.Mesh{tetrahedronMesh()}, st, callbacks.Silent{}, &fakeSink{})
	require.Error(t, err)
	var se *slicererr.SettingsError
	require.ErrorAs(t, err, &se)
}

func TestRunSurfacesSinkError(t *testing.T) {
	st := fullSettings()
	failing := failingSink{}

	_, err := pipeline.Run(context.Background(), 0, []tower.Mesh{tetrahedronMesh()}, st, callbacks.Silent{}, failing)
	require.Error(t, err)
	var se *slicererr.SinkError
	require.ErrorAs(t, err, &se)
}

type failingSink struct{}

func (failingSink) Write([]command.Command) error { return errSinkClosed }

var errSinkClosed = &sinkClosedErr{}

type sinkClosedErr struct{}

func (*sinkClosedErr) Error() string { return "sink closed" }
