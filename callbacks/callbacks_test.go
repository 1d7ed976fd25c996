package callbacks_test

import (
	"bytes"
	"testing"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/tracelog"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestSilentDiscardsEverything(t *testing.T) {
	var s callbacks.Silent
	require.NotPanics(t, func() {
		s.StateUpdate("Slicing")
		s.Commands([]command.Command{command.NoAction()})
	})
}

func TestProfilingLogsPhaseAndCommandCount(t *testing.T) {
	var buf bytes.Buffer
	log := tracelog.New(&buf, tracelog.Debug)
	p := callbacks.NewProfiling(log)

	p.StateUpdate("Slicing")
	p.Commands([]command.Command{
		command.MoveAndExtrude(orb.Point{0, 0}, orb.Point{1, 0}, 0.4, 0.2),
	})

	out := buf.String()
	require.Contains(t, out, "Slicing")
	require.Contains(t, out, "commands generated")
	require.Contains(t, out, "count=1")
}

func TestProfilingDefaultsLoggerWhenNil(t *testing.T) {
	p := callbacks.NewProfiling(nil)
	require.NotPanics(t, func() { p.StateUpdate("Optimizing") })
}
