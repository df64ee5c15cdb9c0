package respond

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// CookieSetter is optionally implemented by bodies to set cookies.
type CookieSetter interface {
	Cookies() []*http.Cookie
}

// HeaderSetter is optionally implemented by bodies to set response headers.
type HeaderSetter interface {
	SetHeaders(h http.Header)
}

// Writer writes response descriptors to an http.ResponseWriter.
type Writer struct {
	codecs   *codecRegistry
	encoders []Encoder
	logger   *slog.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithEncoder registers an additional body encoder.
func WithEncoder(enc Encoder) WriterOption {
	return func(w *Writer) {
		w.encoders = append(w.encoders, enc)
	}
}

// WithLogger sets the logger used to report encode failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter creates a Writer with the given options.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	w.codecs = newCodecRegistry(w.encoders)
	return w
}

var defaultWriter = NewWriter()

// Write writes resp using a Writer with default options.
func Write(w http.ResponseWriter, r *http.Request, resp Response) {
	defaultWriter.Write(w, r, resp)
}

// Write writes resp. Bodies are skipped for nil, 204, 304 and 1xx.
// An error body is written as application/problem+json, as is a []error
// body, whose components are listed under "errors". Other bodies are
// encoded with the encoder negotiated from the Accept header; when nothing
// matches, a 406 problem is written instead.
func (wr *Writer) Write(w http.ResponseWriter, r *http.Request, resp Response) {
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	if resp.Body == nil || !bodyAllowed(status) {
		w.WriteHeader(status)
		return
	}

	switch body := resp.Body.(type) {
	case error:
		wr.writeProblem(w, r, status, problemFor(status, body))
		return
	case []error:
		wr.writeProblem(w, r, status, problemForAll(status, body))
		return
	}

	enc, ok := wr.codecs.negotiate(r.Header.Get("Accept"))
	if !ok {
		wr.writeProblem(w, r, http.StatusNotAcceptable, &ProblemDetail{
			Type:   "about:blank",
			Title:  http.StatusText(http.StatusNotAcceptable),
			Status: http.StatusNotAcceptable,
			Detail: "supported media types: " + strings.Join(wr.codecs.contentTypes(), ", "),
		})
		return
	}

	// Apply cookies and headers before writing status.
	if cs, ok := resp.Body.(CookieSetter); ok {
		for _, c := range cs.Cookies() {
			http.SetCookie(w, c)
		}
	}
	if hs, ok := resp.Body.(HeaderSetter); ok {
		hs.SetHeaders(w.Header())
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.WriteHeader(status)
	if err := enc.Encode(w, resp.Body); err != nil {
		wr.log(r.Context(), "encode response failed",
			slog.Int("status", status),
			slog.String("content_type", enc.ContentType()),
			slog.String("err", err.Error()),
		)
	}
}

func (wr *Writer) writeProblem(w http.ResponseWriter, r *http.Request, status int, pd *ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(pd); err != nil {
		wr.log(r.Context(), "encode problem failed",
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)
	}
}

func (wr *Writer) log(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger := wr.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func bodyAllowed(status int) bool {
	switch {
	case status < http.StatusOK:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	default:
		return true
	}
}
