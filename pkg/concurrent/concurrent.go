package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for each element with at most limit goroutines in flight
// (no bound when limit <= 0). It waits for all started goroutines and returns
// the first error; once an action fails or ctx is done, no new element starts.
func ForEach[T any](ctx context.Context, in []T, limit int, action func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, value := range in {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return action(ctx, value)
		})
	}

	return g.Wait()
}

// Result is the outcome of one element of ParallelMap.
type Result[R any] struct {
	Value R
	Err   error
}

// ParallelMap applies mapFn to each element in parallel, preserving order.
// Errors stay with their element and never stop the others. The workers
// parameter bounds the number of goroutines.
func ParallelMap[T any, R any](in []T, workers int, mapFn func(T) (R, error)) []Result[R] {
	out := make([]Result[R], len(in))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for idx, value := range in {
		g.Go(func() error {
			v, err := mapFn(value)
			out[idx] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return out
}
