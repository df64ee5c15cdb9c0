package respond

import "github.com/bjaus/respond/outcome"

// ResultMap overrides the translation of a Result. Nil fields fall back
// to DefaultSuccess and DefaultFailure.
type ResultMap[T any] struct {
	Success func(T) Response
	Failure func(error) Response
}

// OptionMap overrides the translation of an Option. Nil fields fall back
// to DefaultSuccess and DefaultNone.
type OptionMap[T any] struct {
	Some func(T) Response
	None func() Response
}

// EitherMap overrides the translation of an Either. Nil fields fall back
// to DefaultSuccess and DefaultLeft.
type EitherMap[L, R any] struct {
	Right func(R) Response
	Left  func(L) Response
}

// DefaultSuccess maps outcome.Void to 204 and any other value to 200 with
// the value as body.
func DefaultSuccess[T any](v T) Response {
	if outcome.IsVoid(v) {
		return NoContent()
	}
	return OK(v)
}

// DefaultFailure maps a single error to 500 with the error as body.
func DefaultFailure(err error) Response {
	return InternalServerError(err)
}

// DefaultAggregate maps the components of an aggregate failure to 500
// with the component list as body.
func DefaultAggregate(errs []error) Response {
	return InternalServerError(errs)
}

// DefaultNone maps absence to 404.
func DefaultNone() Response {
	return NotFound()
}

// DefaultLeft maps a left payload to 500 with the payload as body. The
// payload is not inspected.
func DefaultLeft[L any](l L) Response {
	return InternalServerError(l)
}

// Result translates r. Only the first map is used.
func Result[T any](r outcome.Result[T], m ...ResultMap[T]) Response {
	var rm ResultMap[T]
	if len(m) > 0 {
		rm = m[0]
	}

	return outcome.MatchResult(r,
		func(v T) Response {
			if rm.Success != nil {
				return rm.Success(v)
			}
			return DefaultSuccess(v)
		},
		func(err error) Response {
			if rm.Failure != nil {
				return rm.Failure(err)
			}
			if errs, ok := r.Aggregate(); ok {
				return DefaultAggregate(errs)
			}
			return DefaultFailure(err)
		},
	)
}

// Option translates o. Only the first map is used.
func Option[T any](o outcome.Option[T], m ...OptionMap[T]) Response {
	var om OptionMap[T]
	if len(m) > 0 {
		om = m[0]
	}

	some := om.Some
	if some == nil {
		some = DefaultSuccess[T]
	}
	none := om.None
	if none == nil {
		none = DefaultNone
	}
	return outcome.MatchOption(o, some, none)
}

// Either translates e. Only the first map is used.
func Either[L, R any](e outcome.Either[L, R], m ...EitherMap[L, R]) Response {
	var em EitherMap[L, R]
	if len(m) > 0 {
		em = m[0]
	}

	right := em.Right
	if right == nil {
		right = DefaultSuccess[R]
	}
	left := em.Left
	if left == nil {
		left = DefaultLeft[L]
	}
	return outcome.MatchEither(e, right, left)
}
