package respond

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCoder is implemented by errors or bodies that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// ProblemDetail is an RFC 9457 problem details response.
//
//nolint:errname // RFC 9457 standard name
type ProblemDetail struct {
	Type     string        `json:"type,omitempty"`
	Title    string        `json:"title,omitempty"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// Error returns the detail message (or title if detail is empty).
func (p *ProblemDetail) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// StatusCode returns the HTTP status code.
func (p *ProblemDetail) StatusCode() int { return p.Status }

// ErrorDetail describes one component of an aggregate failure.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// HTTPError is an error with an HTTP status code.
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *HTTPError) Error() string { return e.Message }

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int { return e.Status }

// Error returns an error with the given HTTP status code and message.
func Error(status int, message string) error {
	return &HTTPError{Status: status, Message: message}
}

// Errorf returns a formatted error with the given HTTP status code.
func Errorf(status int, format string, args ...any) error {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// ErrorStatus extracts the HTTP status code from an error. Returns
// http.StatusInternalServerError if the error does not implement StatusCoder.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// FromError is a failure override that takes the status from the error
// (see ErrorStatus) instead of always answering 500:
//
//	respond.Result(res, respond.ResultMap[*User]{Failure: respond.FromError})
func FromError(err error) Response {
	return Status(ErrorStatus(err), err)
}

// problemFor converts an error body into a problem detail.
func problemFor(status int, err error) *ProblemDetail {
	var pd *ProblemDetail
	if errors.As(err, &pd) {
		return pd
	}
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: err.Error(),
	}
}

// problemForAll converts the components of an aggregate failure into a
// single problem detail listing each component.
func problemForAll(status int, errs []error) *ProblemDetail {
	items := make([]ErrorDetail, len(errs))
	for i, err := range errs {
		items[i] = ErrorDetail{Message: err.Error()}
		var sc StatusCoder
		if errors.As(err, &sc) {
			items[i].Status = sc.StatusCode()
		}
	}
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: fmt.Sprintf("%d errors occurred", len(errs)),
		Errors: items,
	}
}
