package outcome

import "errors"

// ErrNilFailure is the failure recorded when Fail is given a nil error.
var ErrNilFailure = errors.New("outcome: nil failure")

type resultKind uint8

const (
	resultOk resultKind = iota
	resultFail
	resultAggregate
)

// Result is either a success carrying T or a failure carrying an error.
// Failures whose error enumerates component errors form a distinct
// aggregate variant, see Aggregate.
//
// The zero Result is a success holding the zero T.
type Result[T any] struct {
	kind  resultKind
	value T
	err   error
	errs  []error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{kind: resultOk, value: v}
}

// Fail returns a failed Result. Errors that enumerate components
// (errors.Join, multierr.Combine, *AggregateError) produce the aggregate
// variant.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	if errs := components(err); errs != nil {
		return Result[T]{kind: resultAggregate, err: err, errs: errs}
	}
	return Result[T]{kind: resultFail, err: err}
}

// FailAll returns an aggregate failure over errs. Nil entries are dropped.
func FailAll[T any](errs ...error) Result[T] {
	errs = compact(errs)
	if len(errs) == 0 {
		return Fail[T](nil)
	}
	return Result[T]{kind: resultAggregate, err: &AggregateError{Errs: errs}, errs: errs}
}

// From adapts the (value, error) return convention.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.kind == resultOk }

// Get returns the payload and nil, or the zero T and the failure.
func (r Result[T]) Get() (T, error) {
	if r.kind == resultOk {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// Aggregate returns the component errors when r is an aggregate failure.
func (r Result[T]) Aggregate() ([]error, bool) {
	if r.kind != resultAggregate {
		return nil, false
	}
	return r.errs, true
}

// MatchResult calls ok with the payload or fail with the error, whichever
// case is live, and returns its value.
func MatchResult[T, R any](r Result[T], ok func(T) R, fail func(error) R) R {
	switch r.kind {
	case resultOk:
		return ok(r.value)
	case resultFail, resultAggregate:
		return fail(r.err)
	default:
		panic("outcome: invalid result kind")
	}
}
