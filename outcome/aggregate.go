package outcome

import (
	"strings"

	"go.uber.org/multierr"
)

// AggregateError collects component errors from batched or concurrent
// work. It is the failure payload of the aggregate Result variant.
type AggregateError struct {
	Errs []error
}

// Error joins the component messages with "; ".
func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the components to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errs }

// components returns the errors err enumerates, or nil if err is a single
// error. errors.Join, multierr and AggregateError are recognized at the top
// level only; an aggregate wrapped with %w counts as a single error.
func components(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return compact(u.Unwrap())
	}
	if errs := multierr.Errors(err); len(errs) > 1 {
		return errs
	}
	return nil
}

func compact(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
