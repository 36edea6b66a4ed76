package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/recipe-finder/internal/config"
	"github.com/jonathan/recipe-finder/internal/store"
	"github.com/jonathan/recipe-finder/internal/testutil"
	"github.com/jonathan/recipe-finder/internal/types"
)

// newTestServer builds a server over the sample catalog. mutate may adjust
// the default configuration first.
func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	st := store.New()
	st.Seed(testutil.SampleRecipes())
	s := New(cfg, st, testutil.Logger())
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func do(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(6), resp["recipes"])
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestNotFoundRoute(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode[errorBody](t, w).Message)
}

func TestPanicIsRecoveredAndLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	st := store.New()
	st.Seed(testutil.SampleRecipes())
	s := New(config.Default(), st, zap.New(core))
	t.Cleanup(s.rateLimiter.Stop)

	mux, ok := s.Handler().(*chi.Mux)
	require.True(t, ok)
	mux.Get("/explode", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/explode", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/explode", fields["path"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/survey", nil)
	req.Header.Set("Origin", "https://recipes.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.RateLimit.DefaultLimit = 2
		c.RateLimit.DefaultWindow = time.Hour
	})

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodGet, "/api/facets", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodGet, "/api/facets", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	body := decode[rateLimitBody](t, w)
	assert.Equal(t, "rate_limit_exceeded", body.Error)
	assert.Equal(t, 2, body.Limit)
	assert.Positive(t, body.RetryAfter)

	// Health stays reachable
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.RateLimit.Enabled = false
		c.RateLimit.DefaultLimit = 1
	})

	for i := 0; i < 5; i++ {
		w := do(t, s, http.MethodGet, "/api/facets", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/api/recipes", "").Code)

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipes_api_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/recipes"`)
	assert.Contains(t, w.Body.String(), "recipes_catalog_size")
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Metrics.Enabled = false })

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/metrics", "").Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSurveyEndToEnd(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Recommend.TopN = 3 })

	body, err := json.Marshal(types.SurveyAnswers{
		AutomationGoals: []string{"code-generation"},
		ToolsUsed:       []string{"GPT-4"},
		ExperienceLevel: "advanced",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/survey", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[SurveyResponse](t, w)
	assert.Equal(t, 1, resp.Survey.ID)
	assert.Equal(t, types.Advanced, resp.Survey.ExperienceLevel)
	assert.False(t, resp.Survey.CreatedAt.IsZero())
	assert.Equal(t, []int{3, 1, 5}, testutil.IDs(resp.Recommendations))
}
