package pipeline

import (
	"context"

	"github.com/arcweld/slicecore/calc"
	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/objectpass"
	"github.com/arcweld/slicecore/optimizer"
	"github.com/arcweld/slicecore/plotter"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicepass"
	"github.com/arcweld/slicecore/slicererr"
	"github.com/arcweld/slicecore/slicing"
	"github.com/arcweld/slicecore/tower"
)

// Sink is the orchestrator's downstream byte-output boundary (§4.I, §6):
// an external emitter (g-code writer, IPC encoder, …) that accepts the
// final Command stream. The core never interprets what Write does with
// it; a failed Write surfaces as a SinkError.
type Sink interface {
	Write(cmds []command.Command) error
}

// objectPasses is §4.D's fixed cross-layer order: support towers first
// (skirt/brim read support polygons), skirt, then brim.
var objectPasses = []objectpass.ObjectPass{
	objectpass.SupportTowerPass,
	objectpass.SkirtPass,
	objectpass.BrimPass,
}

// Run drives §4.A through §4.G over meshes with the frozen settings
// snapshot st, reporting phase transitions and findings through cb, and
// handing the final optimized Command stream to sink. workers <= 0 uses
// workpool.DefaultWorkers at every fan-out scope. It returns the
// aggregate CalculatedValues on success; any stage's error short-circuits
// the run with no partial success (§7).
func Run(ctx context.Context, workers int, meshes []tower.Mesh, st *settings.Settings, cb callbacks.Callbacks, sink Sink) (calc.CalculatedValues, error) {
	cb.StateUpdate("Validating Settings")
	warnings, verr := settings.Validate(st)
	for _, w := range warnings {
		cb.HandleSettingsWarning(w)
	}
	if verr != nil {
		if se, ok := verr.(*settings.Error); ok {
			return calc.CalculatedValues{}, &slicererr.SettingsError{Field: se.Field, Value: se.Value, Msg: se.Msg}
		}
		return calc.CalculatedValues{}, verr
	}

	cb.StateUpdate("Checking Model Bounds")
	if err := calc.CheckModelBounds(meshVertexLists(meshes), st); err != nil {
		return calc.CalculatedValues{}, err
	}

	if err := ctx.Err(); err != nil {
		return calc.CalculatedValues{}, err
	}

	cb.StateUpdate("Creating Towers")
	towers, err := tower.BuildAll(ctx, workers, meshes)
	if err != nil {
		return calc.CalculatedValues{}, err
	}

	cb.StateUpdate("Slicing")
	objects, err := slicing.BuildObjects(ctx, workers, towers, st)
	if err != nil {
		return calc.CalculatedValues{}, err
	}

	if err := ctx.Err(); err != nil {
		return calc.CalculatedValues{}, err
	}

	for _, pass := range objectPasses {
		if err := pass(ctx, objects, st, cb); err != nil {
			return calc.CalculatedValues{}, err
		}
	}

	if err := slicepass.DefaultPasses().RunOnObjects(ctx, objects, st, cb); err != nil {
		return calc.CalculatedValues{}, err
	}

	if err := ctx.Err(); err != nil {
		return calc.CalculatedValues{}, err
	}

	cb.StateUpdate("Assembling Moves")
	cmds := plotter.New(st).Plot(objects)

	cb.StateUpdate("Checking Move Bounds")
	if err := calc.CheckMovesBounds(cmds, st); err != nil {
		return calc.CalculatedValues{}, err
	}

	cb.StateUpdate("Optimizing Commands")
	cmds = optimizer.Optimize(cmds, command.StateChange{})
	cmds = optimizer.SlowDownLayer(cmds, st)

	cb.Commands(cmds)

	if err := sink.Write(cmds); err != nil {
		return calc.CalculatedValues{}, &slicererr.SinkError{Err: err}
	}

	cv := calc.Calculate(cmds, st)
	cb.HandleCalculatedValues(callbacks.CalculatedValues{
		PlasticVolume:    cv.PlasticVolume,
		PlasticLength:    cv.PlasticLength,
		PlasticWeight:    cv.PlasticWeight,
		TotalTimeSeconds: cv.TotalTimeSeconds,
	}, st)
	cb.HandleSliceFinished()

	return cv, nil
}

func meshVertexLists(meshes []tower.Mesh) [][]geom.Vertex {
	out := make([][]geom.Vertex, len(meshes))
	for i, m := range meshes {
		out[i] = m.Vertices
	}
	return out
}
