// Package concurrent holds small fan-out helpers over errgroup and ants
// worker pools.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Executor runs n indexed tasks and waits for all of them. The first error
// is returned and cancels the context seen by the remaining tasks.
type Executor interface {
	Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error
}

// Group is an Executor that starts a goroutine per task, at most Limit at a
// time (Limit <= 0 means no limit).
type Group struct {
	Limit int
}

func (g Group) Run(ctx context.Context, n int, task func(context.Context, int) error) error {
	eg, gctx := errgroup.WithContext(ctx)
	if g.Limit > 0 {
		eg.SetLimit(g.Limit)
	}

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21 for the local toolchain
		eg.Go(func() error {
			return task(gctx, i)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ForEach runs action for every item on a Group with the given limit. Items
// not yet started when an action fails are skipped.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	return Group{Limit: limit}.Run(ctx, len(items), func(ctx context.Context, i int) error {
		return action(ctx, items[i])
	})
}

// Map applies fn to every item concurrently and returns results in input
// order. On error the partial results are discarded.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	return MapOn(ctx, Group{Limit: limit}, items, fn)
}

// MapOn is Map on an arbitrary Executor.
func MapOn[T, R any](ctx context.Context, ex Executor, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := ex.Run(ctx, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
