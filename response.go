package respond

import "net/http"

// Response is an HTTP response descriptor. A nil Body means no body.
type Response struct {
	Status int
	Body   any
}

// StatusCode returns the HTTP status code.
func (r Response) StatusCode() int { return r.Status }

// OK returns a 200 response with body.
func OK(body any) Response {
	return Response{Status: http.StatusOK, Body: body}
}

// Created returns a 201 response with body.
func Created(body any) Response {
	return Response{Status: http.StatusCreated, Body: body}
}

// NoContent returns a 204 response.
func NoContent() Response {
	return Response{Status: http.StatusNoContent}
}

// NotFound returns a 404 response.
func NotFound() Response {
	return Response{Status: http.StatusNotFound}
}

// InternalServerError returns a 500 response with body.
func InternalServerError(body any) Response {
	return Response{Status: http.StatusInternalServerError, Body: body}
}

// Status returns a response with an arbitrary status code and body.
func Status(code int, body any) Response {
	return Response{Status: code, Body: body}
}
