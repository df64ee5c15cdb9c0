package outcome_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/bjaus/respond/outcome"
)

func TestOk(t *testing.T) {
	t.Parallel()

	r := outcome.Ok(42)
	assert.True(t, r.IsOk())

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, agg := r.Aggregate()
	assert.False(t, agg)
}

func TestFail_single(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := outcome.Fail[int](boom)
	assert.False(t, r.IsOk())

	v, err := r.Get()
	require.ErrorIs(t, err, boom)
	assert.Zero(t, v)

	errs, agg := r.Aggregate()
	assert.False(t, agg)
	assert.Nil(t, errs)
}

func TestFail_nil_error(t *testing.T) {
	t.Parallel()

	_, err := outcome.Fail[string](nil).Get()
	require.ErrorIs(t, err, outcome.ErrNilFailure)
}

func TestFail_classifies_aggregates(t *testing.T) {
	t.Parallel()

	e1 := errors.New("first")
	e2 := errors.New("second")

	tests := map[string]struct {
		err    error
		agg    bool
		expect []error
	}{
		"errors.Join": {
			err:    errors.Join(e1, e2),
			agg:    true,
			expect: []error{e1, e2},
		},
		"multierr.Combine": {
			err:    multierr.Combine(e1, e2),
			agg:    true,
			expect: []error{e1, e2},
		},
		"AggregateError": {
			err:    &outcome.AggregateError{Errs: []error{e1, e2}},
			agg:    true,
			expect: []error{e1, e2},
		},
		"multierr with one error": {
			err: multierr.Combine(nil, e1),
		},
		"plain error": {
			err: e1,
		},
		"wrapped join": {
			err: fmt.Errorf("import: %w", errors.Join(e1, e2)),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := outcome.Fail[int](tc.err)
			errs, agg := r.Aggregate()
			assert.Equal(t, tc.agg, agg)
			assert.Equal(t, tc.expect, errs)

			_, err := r.Get()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestFailAll(t *testing.T) {
	t.Parallel()

	e1 := errors.New("first")
	e2 := errors.New("second")

	r := outcome.FailAll[int](e1, nil, e2)
	errs, agg := r.Aggregate()
	require.True(t, agg)
	assert.Equal(t, []error{e1, e2}, errs)

	_, err := r.Get()
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
	assert.EqualError(t, err, "first; second")

	var ae *outcome.AggregateError
	require.ErrorAs(t, err, &ae)
	assert.Len(t, ae.Errs, 2)
}

func TestFailAll_no_errors(t *testing.T) {
	t.Parallel()

	r := outcome.FailAll[int](nil, nil)
	_, agg := r.Aggregate()
	assert.False(t, agg)

	_, err := r.Get()
	require.ErrorIs(t, err, outcome.ErrNilFailure)
}

func TestFrom(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.From("x", nil).IsOk())
	assert.False(t, outcome.From("x", errors.New("nope")).IsOk())
}

func TestMatchResult_runs_one_branch(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		r      outcome.Result[int]
		expect string
	}{
		"ok":        {r: outcome.Ok(7), expect: "ok:7"},
		"fail":      {r: outcome.Fail[int](errors.New("bad")), expect: "fail:bad"},
		"aggregate": {r: outcome.FailAll[int](errors.New("a"), errors.New("b")), expect: "fail:a; b"},
		"zero":      {expect: "ok:0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			got := outcome.MatchResult(tc.r,
				func(v int) string { calls++; return fmt.Sprintf("ok:%d", v) },
				func(err error) string { calls++; return "fail:" + err.Error() },
			)
			assert.Equal(t, tc.expect, got)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestIsVoid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		v      any
		expect bool
	}{
		"Void":         {v: outcome.Void{}, expect: true},
		"*Void":        {v: &outcome.Void{}, expect: true},
		"empty struct": {v: struct{}{}},
		"nil":          {v: nil},
		"string":       {v: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, outcome.IsVoid(tc.v))
		})
	}
}
