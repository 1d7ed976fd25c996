package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultWorkers returns a sensible worker-count default: the number of
// logical CPUs, floored at 2 so single-core environments still get
// overlap between I/O-ish waits and compute.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 2 {
		return 2
	}
	return n
}

// Map runs fn(ctx, items[i]) for every i, bounded to at most workers
// concurrent calls, and returns results in the same order as items. The
// first error from any call cancels ctx for the rest and is returned;
// in-flight calls are allowed to finish (cooperative cancellation — fn
// should check ctx itself if it wants to abort early). A workers value
// <= 0 uses DefaultWorkers.
func Map[T any, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	sem := semaphore.NewWeighted(int64(workers))
	group, gctx := errgroup.WithContext(ctx)

	for i := range items {
		i := i
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			r, err := fn(gctx, items[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Each runs fn(ctx, items[i]) for every i, bounded to workers concurrent
// calls, discarding results — a convenience wrapper around Map for passes
// that mutate their input in place instead of returning a value.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	_, err := Map(ctx, workers, items, func(c context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(c, item)
	})
	return err
}
