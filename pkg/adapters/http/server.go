// Package http exposes the splice engine as a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/splice/internal/logging"
	"github.com/aretw0/splice/pkg/domain"
	"github.com/aretw0/splice/pkg/trace"
)

// Solver defines the engine surface the API needs.
type Solver interface {
	Solve(raw string) (*domain.Completion, error)
}

// ResultCache is an optional whole-result cache keyed by the cleaned trace.
// The solver is deterministic, so equal traces always map to equal
// completions; the per-invocation memo cache inside the solver is unaffected.
type ResultCache interface {
	Get(ctx context.Context, trace string) (*domain.Completion, bool)
	Put(ctx context.Context, trace string, c *domain.Completion)
}

// Server handles the JSON API routes.
type Server struct {
	solver  Solver
	cache   ResultCache
	logger  *slog.Logger
	metrics *metrics
}

// ServerOption configures the handler.
type ServerOption func(*Server)

// WithCache attaches a result cache consulted before solving.
func WithCache(c ResultCache) ServerOption {
	return func(s *Server) {
		s.cache = c
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine: POST /api/solve,
// GET /healthz and GET /metrics.
func NewHandler(solver Solver, opts ...ServerOption) http.Handler {
	s := &Server{
		solver:  solver,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Post("/api/solve", s.handleSolve)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

type solveRequest struct {
	Trace string `json:"trace"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	cleaned := trace.Clean(req.Trace)
	if s.cache != nil {
		if cached, ok := s.cache.Get(r.Context(), cleaned); ok {
			s.metrics.cacheHits.Inc()
			s.respond(w, r, cached, started, "hit")
			return
		}
	}

	completion, err := s.solver.Solve(req.Trace)
	switch {
	case errors.Is(err, domain.ErrInvalidTraceLength):
		s.metrics.solves.WithLabelValues("invalid").Inc()
		s.fail(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrNoCompletion):
		s.metrics.solves.WithLabelValues("no_completion").Inc()
		s.fail(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		s.metrics.solves.WithLabelValues("error").Inc()
		s.logger.Error("solve failed", "error", err, "request_id", requestIDFrom(r))
		s.fail(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	if s.cache != nil {
		s.cache.Put(r.Context(), cleaned, completion)
	}
	s.respond(w, r, completion, started, "miss")
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, c *domain.Completion, started time.Time, cache string) {
	s.metrics.solves.WithLabelValues("ok").Inc()
	s.metrics.duration.Observe(time.Since(started).Seconds())
	s.logger.Info("trace solved",
		"request_id", requestIDFrom(r),
		"cost", c.Cost,
		"steps", len(c.Path),
		"cache", cache,
	)
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.logger.Debug("request rejected", "request_id", requestIDFrom(r), "status", status, "reason", msg)
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type requestIDKey struct{}

// requestID tags every request with a UUID, echoed in the X-Request-ID header
// and attached to log lines.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}
