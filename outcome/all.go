package outcome

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// TryAll runs fns concurrently, at most limit at a time (limit <= 0 means
// no limit), and resolves to the values in call order. Every failure is
// kept: one failure yields a single failure, several yield an aggregate.
// A failure does not cancel the other functions.
func TryAll[T any](ctx context.Context, limit int, fns ...func(context.Context) (T, error)) *Future[Result[[]T]] {
	return Go(ctx, func(ctx context.Context) Result[[]T] {
		var g errgroup.Group
		if limit > 0 {
			g.SetLimit(limit)
		}

		vals := make([]T, len(fns))
		errs := make([]error, len(fns))
		for i, fn := range fns {
			g.Go(func() error {
				vals[i], errs[i] = fn(ctx)
				return nil
			})
		}
		//nolint:errcheck // workers never return an error
		g.Wait()

		if err := multierr.Combine(errs...); err != nil {
			return Fail[[]T](err)
		}
		return Ok(vals)
	})
}
