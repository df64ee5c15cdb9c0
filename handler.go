package respond

import (
	"context"
	"errors"
	"net/http"

	"github.com/bjaus/respond/outcome"
)

// HandlerFunc adapts a function returning a Response to http.Handler.
// The response is written with the default Writer; use Handler to choose
// another.
type HandlerFunc func(r *http.Request) Response

// ServeHTTP implements http.Handler.
func (h HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Write(w, r, h(r))
}

// AsyncHandlerFunc adapts a function returning a future Response to
// http.Handler. See AsyncHandler.
type AsyncHandlerFunc func(r *http.Request) *outcome.Future[Response]

// ServeHTTP implements http.Handler.
func (h AsyncHandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveAsync(defaultWriter, w, r, h(r))
}

// Handler binds a synchronous handler to this Writer.
func (wr *Writer) Handler(h func(r *http.Request) Response) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wr.Write(w, r, h(r))
	})
}

// AsyncHandler binds an asynchronous handler to this Writer. It waits for
// the future under the request context. If the context ends first the
// future is cancelled; a deadline is answered with 503, a departed client
// with nothing.
func (wr *Writer) AsyncHandler(h func(r *http.Request) *outcome.Future[Response]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveAsync(wr, w, r, h(r))
	})
}

func serveAsync(wr *Writer, w http.ResponseWriter, r *http.Request, f *outcome.Future[Response]) {
	resp, err := f.Await(r.Context())
	if err != nil {
		f.Cancel()
		if errors.Is(err, context.DeadlineExceeded) {
			wr.Write(w, r, Status(http.StatusServiceUnavailable,
				Error(http.StatusServiceUnavailable, "response not ready before deadline")))
		}
		return
	}
	wr.Write(w, r, resp)
}
