package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/splice"
	httpAdapter "github.com/aretw0/splice/pkg/adapters/http"
	"github.com/aretw0/splice/pkg/domain"
)

func postSolve(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Solve(t *testing.T) {
	handler := httpAdapter.NewHandler(splice.New())

	rec := postSolve(t, handler, `{"trace":"011_011_011"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var completion domain.Completion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&completion))
	assert.Equal(t, 0, completion.Cost)
	assert.Len(t, completion.Path, 3)
	assert.Equal(t, domain.State("S0"), completion.Start)
}

func TestHandler_InvalidTrace(t *testing.T) {
	handler := httpAdapter.NewHandler(splice.New())

	rec := postSolve(t, handler, `{"trace":"0101"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "multiple of 3")
}

func TestHandler_BadBody(t *testing.T) {
	handler := httpAdapter.NewHandler(splice.New())

	rec := postSolve(t, handler, `{"trace":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RequestIDPassthrough(t *testing.T) {
	handler := httpAdapter.NewHandler(splice.New())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}

func TestHandler_Metrics(t *testing.T) {
	handler := httpAdapter.NewHandler(splice.New())

	// Generate one request so the counter has a sample.
	postSolve(t, handler, `{"trace":"011011011"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "splice_solve_requests_total")
}

// fakeCache records lookups and stores in memory.
type fakeCache struct {
	entries map[string]*domain.Completion
	gets    int
	puts    int
}

func (f *fakeCache) Get(_ context.Context, trace string) (*domain.Completion, bool) {
	f.gets++
	c, ok := f.entries[trace]
	return c, ok
}

func (f *fakeCache) Put(_ context.Context, trace string, c *domain.Completion) {
	f.puts++
	f.entries[trace] = c
}

// countingSolver wraps the engine to observe whether it was invoked.
type countingSolver struct {
	inner  *splice.Engine
	solves int
}

func (c *countingSolver) Solve(raw string) (*domain.Completion, error) {
	c.solves++
	return c.inner.Solve(raw)
}

func TestHandler_CacheHitSkipsSolver(t *testing.T) {
	cache := &fakeCache{entries: map[string]*domain.Completion{}}
	solver := &countingSolver{inner: splice.New()}
	handler := httpAdapter.NewHandler(solver, httpAdapter.WithCache(cache))

	first := postSolve(t, handler, `{"trace":"011_011_011"}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, solver.solves)
	assert.Equal(t, 1, cache.puts)

	// The cleaned trace is the cache key, so the separator layout is
	// irrelevant on the second request.
	second := postSolve(t, handler, `{"trace":"011011011"}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, solver.solves)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
