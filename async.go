package respond

import "github.com/bjaus/respond/outcome"

// ResultAsync translates the Result f resolves to. Cancel on the returned
// future cancels f.
func ResultAsync[T any](f *outcome.Future[outcome.Result[T]], m ...ResultMap[T]) *outcome.Future[Response] {
	return outcome.Then(f, func(r outcome.Result[T]) Response {
		return Result(r, m...)
	})
}

// OptionAsync translates the Option f resolves to.
func OptionAsync[T any](f *outcome.Future[outcome.Option[T]], m ...OptionMap[T]) *outcome.Future[Response] {
	return outcome.Then(f, func(o outcome.Option[T]) Response {
		return Option(o, m...)
	})
}

// EitherAsync translates the Either f resolves to.
func EitherAsync[L, R any](f *outcome.Future[outcome.Either[L, R]], m ...EitherMap[L, R]) *outcome.Future[Response] {
	return outcome.Then(f, func(e outcome.Either[L, R]) Response {
		return Either(e, m...)
	})
}
