package respond_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/outcome"
)

// pending returns a future that resolves to v once the test releases it.
func pending[T any](t *testing.T, v T) (*outcome.Future[T], func()) {
	t.Helper()
	gate := make(chan struct{})
	f := outcome.Go(context.Background(), func(context.Context) T {
		<-gate
		return v
	})
	return f, func() { close(gate) }
}

func await(t *testing.T, f *outcome.Future[respond.Response]) respond.Response {
	t.Helper()
	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	return resp
}

func TestResultAsync_parity(t *testing.T) {
	t.Parallel()

	failOverride := respond.ResultMap[string]{Failure: respond.FromError}

	tests := map[string]struct {
		res outcome.Result[string]
		m   []respond.ResultMap[string]
	}{
		"success":   {res: outcome.Ok("ok")},
		"failure":   {res: outcome.Fail[string](errFirst)},
		"aggregate": {res: outcome.FailAll[string](errFirst, errSecond)},
		"override":  {res: outcome.Fail[string](respond.Error(http.StatusConflict, "taken")), m: []respond.ResultMap[string]{failOverride}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			want := respond.Result(tc.res, tc.m...)

			assertResponse(t, want, await(t, respond.ResultAsync(outcome.Resolved(tc.res), tc.m...)))

			f, release := pending(t, tc.res)
			got := respond.ResultAsync(f, tc.m...)
			release()
			assertResponse(t, want, await(t, got))
		})
	}
}

func TestResultAsync_void(t *testing.T) {
	t.Parallel()

	f, release := pending(t, outcome.Ok(outcome.Void{}))
	got := respond.ResultAsync(f)
	release()

	assertResponse(t, respond.NoContent(), await(t, got))
}

func TestOptionAsync_parity(t *testing.T) {
	t.Parallel()

	tests := map[string]outcome.Option[int]{
		"some": outcome.Some(7),
		"none": outcome.None[int](),
	}

	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, release := pending(t, opt)
			got := respond.OptionAsync(f)
			release()
			assertResponse(t, respond.Option(opt), await(t, got))
		})
	}

	voided := outcome.Some(outcome.Void{})
	assertResponse(t, respond.NoContent(), await(t, respond.OptionAsync(outcome.Resolved(voided))))
}

func TestEitherAsync_parity(t *testing.T) {
	t.Parallel()

	joined := errors.Join(errFirst, errSecond)
	leftOverride := respond.EitherMap[error, int]{Left: func(err error) respond.Response {
		return respond.Status(http.StatusBadRequest, err)
	}}

	tests := map[string]struct {
		e outcome.Either[error, int]
		m []respond.EitherMap[error, int]
	}{
		"right":          {e: outcome.Right[error](1)},
		"left":           {e: outcome.Left[error, int](errFirst)},
		"left aggregate": {e: outcome.Left[error, int](joined)},
		"left override":  {e: outcome.Left[error, int](errFirst), m: []respond.EitherMap[error, int]{leftOverride}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, release := pending(t, tc.e)
			got := respond.EitherAsync(f, tc.m...)
			release()
			assertResponse(t, respond.Either(tc.e, tc.m...), await(t, got))
		})
	}
}

func TestResultAsync_cancel_reaches_source(t *testing.T) {
	t.Parallel()

	src := outcome.Go(context.Background(), func(ctx context.Context) outcome.Result[string] {
		<-ctx.Done()
		return outcome.Fail[string](ctx.Err())
	})
	got := respond.ResultAsync(src)
	got.Cancel()

	resp := await(t, got)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.ErrorIs(t, resp.Body.(error), context.Canceled)
}

func TestResultAsync_override_runs_once(t *testing.T) {
	t.Parallel()

	calls := 0
	f, release := pending(t, outcome.Ok(3))
	got := respond.ResultAsync(f, respond.ResultMap[int]{Success: func(v int) respond.Response {
		calls++
		return respond.OK(v * 2)
	}})
	release()

	assertResponse(t, respond.OK(6), await(t, got))
	assertResponse(t, respond.OK(6), await(t, got))
	require.Equal(t, 1, calls)
}
