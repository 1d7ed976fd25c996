package optimizer

import (
	"math"

	"github.com/arcweld/slicecore/calc"
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/settings"
)

// layerWindow is the command slice between one LayerChange (inclusive) and
// the next (exclusive), plus the layer index that LayerChange carried.
type layerWindow struct {
	layerIndex int
	cmds       []command.Command
}

// SlowDownLayer scales every movement_speed within a layer window down
// uniformly when that layer's total time falls below
// fan.slow_down_threshold, clamped so no resulting speed drops below
// fan.min_print_speed, and zeroes fan speed on layers below
// disable_fan_for_layers (§4.G). The pipeline applies it to Optimize's
// output; the per-window timing model (calc.Calculate) tracks speed itself
// and works on an unoptimized stream as well.
func SlowDownLayer(cmds []command.Command, st *settings.Settings) []command.Command {
	windows := splitLayerWindows(cmds)
	out := make([]command.Command, 0, len(cmds))
	for _, w := range windows {
		out = append(out, slowDownWindow(w, st)...)
	}
	return out
}

func splitLayerWindows(cmds []command.Command) []layerWindow {
	var windows []layerWindow
	var cur []command.Command
	curIdx := -1
	started := false
	for _, c := range cmds {
		if c.Kind == command.LayerChangeKind {
			if started {
				windows = append(windows, layerWindow{layerIndex: curIdx, cmds: cur})
			}
			curIdx, cur, started = c.LayerIndex, []command.Command{c}, true
			continue
		}
		cur = append(cur, c)
	}
	if started {
		windows = append(windows, layerWindow{layerIndex: curIdx, cmds: cur})
	}
	return windows
}

func slowDownWindow(w layerWindow, st *settings.Settings) []command.Command {
	out := make([]command.Command, len(w.cmds))
	copy(out, w.cmds)

	if w.layerIndex < st.DisableFanForLayers {
		disableFan(out)
	}

	if st.SlowDownThreshold <= 0 {
		return out
	}
	cv := calc.Calculate(out, st)
	if cv.TotalTimeSeconds >= st.SlowDownThreshold {
		return out
	}
	scale := cv.TotalTimeSeconds / st.SlowDownThreshold

	minSpeed := math.Inf(1)
	for _, c := range out {
		if c.Kind == command.SetStateKind && c.State.MovementSpeed != nil && *c.State.MovementSpeed > 0 && *c.State.MovementSpeed < minSpeed {
			minSpeed = *c.State.MovementSpeed
		}
	}
	if math.IsInf(minSpeed, 1) {
		return out
	}
	if floor := st.MinPrintSpeed / minSpeed; scale < floor {
		scale = floor
	}
	if scale > 1 {
		scale = 1
	}

	for i, c := range out {
		if c.Kind == command.SetStateKind && c.State.MovementSpeed != nil {
			v := *c.State.MovementSpeed * scale
			out[i].State.MovementSpeed = &v
		}
	}
	return out
}

func disableFan(cmds []command.Command) {
	zero := 0.0
	for i, c := range cmds {
		if c.Kind == command.SetStateKind && c.State.FanSpeed != nil {
			cmds[i].State.FanSpeed = &zero
		}
	}
}
