package command_test

import (
	"testing"

	"github.com/arcweld/slicecore/command"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestStateChangeIsEmpty(t *testing.T) {
	require.True(t, command.StateChange{}.IsEmpty())

	speed := 50.0
	require.False(t, command.StateChange{MovementSpeed: &speed}.IsEmpty())
}

func TestStateChangeCombineSecondOverridesOverlap(t *testing.T) {
	a, b := 50.0, 60.0
	first := command.StateChange{MovementSpeed: &a, BedTemp: &a}
	second := command.StateChange{MovementSpeed: &b}

	combined := first.Combine(second)
	require.Equal(t, b, *combined.MovementSpeed)
	require.Equal(t, a, *combined.BedTemp)
}

func TestStateChangeDiffElidesUnchangedFields(t *testing.T) {
	running := command.StateChange{}
	a, b, c := 50.0, 50.0, 60.0

	diff1 := running.Diff(command.StateChange{MovementSpeed: &a})
	require.Equal(t, a, *diff1.MovementSpeed)

	diff2 := running.Diff(command.StateChange{MovementSpeed: &b})
	require.Nil(t, diff2.MovementSpeed, "speed unchanged from running state should be elided")

	diff3 := running.Diff(command.StateChange{MovementSpeed: &c})
	require.Equal(t, c, *diff3.MovementSpeed)
}

func TestCommandIsNoOp(t *testing.T) {
	require.True(t, command.NoAction().IsNoOp())
	require.True(t, command.MoveAndExtrude(orb.Point{0, 0}, orb.Point{0, 0}, 1, 1).IsNoOp())
	require.False(t, command.MoveAndExtrude(orb.Point{0, 0}, orb.Point{1, 0}, 1, 1).IsNoOp())
	require.True(t, command.Delay(0).IsNoOp())
	require.False(t, command.Delay(5).IsNoOp())
}
