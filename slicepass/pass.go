package slicepass

import (
	"context"

	"github.com/arcweld/slicecore/callbacks"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicemodel"
	"github.com/arcweld/slicecore/workpool"
)

// SlicePass runs once per object over that object's slice stack.
type SlicePass interface {
	Pass(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error
}

// Func adapts a plain function to SlicePass, the same shape
// http.HandlerFunc adapts a function to Handler.
type Func func(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error

// Pass calls f.
func (f Func) Pass(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	return f(ctx, slices, st, cb)
}

// ChainedPass runs A then B, matching the reference's ChainedPass<A, B>.
type ChainedPass struct {
	A, B SlicePass
}

// Pass runs c.A, then c.B unless A failed.
func (c ChainedPass) Pass(ctx context.Context, slices []*slicemodel.Slice, st *settings.Settings, cb callbacks.Callbacks) error {
	if err := c.A.Pass(ctx, slices, st, cb); err != nil {
		return err
	}
	return c.B.Pass(ctx, slices, st, cb)
}

// Chain folds passes left to right into a single SlicePass, equivalent to
// repeated calls to the reference's SlicePass::chain.
func Chain(passes ...SlicePass) SlicePass {
	if len(passes) == 0 {
		return Func(func(context.Context, []*slicemodel.Slice, *settings.Settings, callbacks.Callbacks) error { return nil })
	}
	result := passes[0]
	for _, p := range passes[1:] {
		result = ChainedPass{A: result, B: p}
	}
	return result
}

// List is the standard §4.E order; RunOnObjects applies every pass in
// order to each object's slice stack, one object per workpool worker — the
// Go shape of the reference's "impl ObjectPass for Vec<Box<dyn SlicePass>>".
type List []SlicePass

// DefaultPasses is §4.E's pass order.
func DefaultPasses() List {
	return List{
		Shrink,
		Perimeters,
		Bridging,
		TopLayer,
		TopAndBottomLayers,
		Support,
		LightningFill,
		FillArea,
		OrderChains,
	}
}

// RunOnObjects runs l against every object's slice stack, in parallel
// across objects, matching objectpass.ObjectPass's signature so it can be
// used directly as one.
func (l List) RunOnObjects(ctx context.Context, objects []*slicemodel.Object, st *settings.Settings, cb callbacks.Callbacks) error {
	return workpool.Each(ctx, 0, objects, func(c context.Context, obj *slicemodel.Object) error {
		for _, p := range l {
			if err := p.Pass(c, obj.Slices, st, cb); err != nil {
				return err
			}
		}
		return nil
	})
}
