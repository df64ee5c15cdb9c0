// Command sample serves a small user API whose handlers return outcome
// values and leave the HTTP representation to package respond.
//
// Run:
//
//	go run ./cmd/sample
//	SAMPLE_ADDR=:9090 SAMPLE_RATE=1 go run ./cmd/sample
//
// Then explore:
//
//	GET    http://localhost:8080/v1/health             — Result, 200
//	GET    http://localhost:8080/v1/users/{id}         — Option, 200 or 404
//	POST   http://localhost:8080/v1/users              — Either, 201, 400 or 429
//	DELETE http://localhost:8080/v1/users/{id}         — Result[Void], 204 or 404
//	GET    http://localhost:8080/v1/users/{id}/report  — async Result, 200 or 404
//	POST   http://localhost:8080/v1/users/import       — aggregate failures, 500 with a list
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/outcome"
)

type config struct {
	Addr        string        `env:"SAMPLE_ADDR" envDefault:":8080"`
	Rate        float64       `env:"SAMPLE_RATE" envDefault:"5"`
	Burst       int           `env:"SAMPLE_BURST" envDefault:"10"`
	ReportDelay time.Duration `env:"SAMPLE_REPORT_DELAY" envDefault:"200ms"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	addrFlag := flag.String("addr", "", "Listen address (overrides SAMPLE_ADDR)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting server", "addr", cfg.Addr, "rate", cfg.Rate, "burst", cfg.Burst)

	if err := listenAndServe(ctx, cfg.Addr, newServer(cfg, newUserStore())); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
	}

	slog.Info("server stopped")
}

// listenAndServe blocks until the context is cancelled, then shuts down
// gracefully.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newServer(cfg config, store *userStore) http.Handler {
	s := &server{
		store:       store,
		limiter:     rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		reportDelay: cfg.ReportDelay,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /v1/health", respond.HandlerFunc(s.health))
	mux.Handle("GET /v1/users/{id}", respond.HandlerFunc(s.getUser))
	mux.Handle("POST /v1/users", respond.HandlerFunc(s.createUser))
	mux.Handle("DELETE /v1/users/{id}", respond.HandlerFunc(s.deleteUser))
	mux.Handle("GET /v1/users/{id}/report", respond.AsyncHandlerFunc(s.userReport))
	mux.Handle("POST /v1/users/import", respond.AsyncHandlerFunc(s.importUsers))

	logger := slog.Default()
	return recovery(logger, requestLogger(logger, mux))
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

type healthResp struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type createUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (b createUserBody) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return respond.Error(http.StatusBadRequest, "name is required")
	}
	if !strings.Contains(b.Email, "@") {
		return respond.Errorf(http.StatusBadRequest, "email %q must contain @", b.Email)
	}
	return nil
}

type reportResp struct {
	User        User          `json:"user"`
	GeneratedAt time.Time     `json:"generated_at"`
	Took        time.Duration `json:"took"`
}

var errRateLimited = respond.Error(http.StatusTooManyRequests, "too many writes, slow down")

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

type server struct {
	store       *userStore
	limiter     *rate.Limiter
	reportDelay time.Duration
}

func (s *server) health(*http.Request) respond.Response {
	return respond.Result(outcome.Ok(healthResp{Status: "ok", Time: time.Now()}))
}

func (s *server) getUser(r *http.Request) respond.Response {
	return respond.Option(s.store.get(r.PathValue("id")))
}

func (s *server) createUser(r *http.Request) respond.Response {
	return respond.Either(s.create(r), respond.EitherMap[error, User]{
		Right: func(u User) respond.Response { return respond.Created(u) },
		Left:  respond.FromError,
	})
}

func (s *server) create(r *http.Request) outcome.Either[error, User] {
	if !s.limiter.Allow() {
		return outcome.Left[error, User](errRateLimited)
	}

	var body createUserBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return outcome.Left[error, User](respond.Errorf(http.StatusBadRequest, "invalid body: %v", err))
	}
	if err := body.validate(); err != nil {
		return outcome.Left[error, User](err)
	}
	return outcome.Right[error](s.store.create(body.Name, body.Email, body.Role))
}

func (s *server) deleteUser(r *http.Request) respond.Response {
	res := outcome.From(outcome.Void{}, s.store.delete(r.PathValue("id")))
	return respond.Result(res, respond.ResultMap[outcome.Void]{Failure: respond.FromError})
}

func (s *server) userReport(r *http.Request) *outcome.Future[respond.Response] {
	id := r.PathValue("id")
	report := outcome.Go(r.Context(), func(ctx context.Context) outcome.Result[outcome.Option[reportResp]] {
		start := time.Now()
		select {
		case <-ctx.Done():
			return outcome.Fail[outcome.Option[reportResp]](ctx.Err())
		case <-time.After(s.reportDelay):
		}

		u, ok := s.store.get(id).Get()
		if !ok {
			return outcome.Ok(outcome.None[reportResp]())
		}
		return outcome.Ok(outcome.Some(reportResp{User: u, GeneratedAt: time.Now(), Took: time.Since(start)}))
	})

	return respond.ResultAsync(report, respond.ResultMap[outcome.Option[reportResp]]{
		Success: func(o outcome.Option[reportResp]) respond.Response { return respond.Option(o) },
	})
}

func (s *server) importUsers(r *http.Request) *outcome.Future[respond.Response] {
	var rows []createUserBody
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		return outcome.Resolved(respond.FromError(respond.Errorf(http.StatusBadRequest, "invalid body: %v", err)))
	}

	fns := make([]func(context.Context) (User, error), len(rows))
	for i, row := range rows {
		fns[i] = func(context.Context) (User, error) {
			if err := row.validate(); err != nil {
				return User{}, fmt.Errorf("row %d: %w", i+1, err)
			}
			return s.store.create(row.Name, row.Email, row.Role), nil
		}
	}

	return respond.ResultAsync(outcome.TryAll(r.Context(), 4, fns...))
}
