package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewrelay/internal/config"
	"reviewrelay/internal/middleware"
	"reviewrelay/internal/modules/health"
	"reviewrelay/internal/modules/proxy"
	"reviewrelay/internal/modules/review"
	"reviewrelay/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testSuite struct {
	router   *gin.Engine
	upstream *httptest.Server
}

type envelope struct {
	OK      bool            `json:"ok"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Service string          `json:"service"`
	Reviews []review.Review `json:"reviews"`
	Review  *review.Review  `json:"review"`
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Canned upstream standing in for the completions API.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-e2e","choices":[]}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Env:             "dev",
		UpstreamURL:     upstream.URL,
		UpstreamAPIKey:  "sk-e2e",
		APIVersion:      "2024-06-01",
		DefaultModel:    "gpt-4o-mini",
		UpstreamTimeout: 5 * time.Second,
		DatabaseURL:     ":memory:",
		ReviewsKey:      "reviews",
	}

	st, err := store.NewGormStore(cfg.DatabaseURL)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.ErrorLogger(), middleware.CORS())

	health.NewHandler(cfg).RegisterRoutes(router)
	review.NewHandler(review.NewService(st, cfg.ReviewsKey)).RegisterRoutes(router)
	router.NoRoute(proxy.NewHandler(proxy.NewService(cfg)).Fallback)

	return &testSuite{router: router, upstream: upstream}
}

func (s *testSuite) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)

	var env envelope
	if resp.Body.Len() > 0 {
		_ = json.Unmarshal(resp.Body.Bytes(), &env)
	}
	return resp, env
}

func TestHealthEndpoint(t *testing.T) {
	s := setupSuite(t)

	resp, env := s.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, env.OK)
	require.Equal(t, "reviewrelay", env.Service)
	require.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightAnywhere(t *testing.T) {
	s := setupSuite(t)

	resp, _ := s.do(t, http.MethodOptions, "/v1/chat/completions", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Empty(t, resp.Body.String())
}

func TestReviewLifecycle(t *testing.T) {
	s := setupSuite(t)

	// First list seeds the collection.
	resp, env := s.do(t, http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, env.Reviews, 3)
	require.Equal(t, "Jennifer D.", env.Reviews[0].Name)

	// Create lands at position 0 with a server-assigned date.
	resp, env = s.do(t, http.MethodPost, "/reviews", gin.H{
		"name":   "Jane Doe",
		"text":   "Loved it! \U0001F60A",
		"rating": 4,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, env.OK)
	created := env.Review
	require.NotNil(t, created)
	_, err := time.Parse(time.RFC3339, created.Date)
	require.NoError(t, err)

	resp, env = s.do(t, http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, env.Reviews, 4)
	require.Equal(t, *created, env.Reviews[0])
	require.Equal(t, "Loved it! \U0001F60A", env.Reviews[0].Text)

	// Delete is case-insensitive and bulk.
	resp, env = s.do(t, http.MethodDelete, "/reviews", gin.H{"name": "JANE DOE"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, env.OK)
	require.Equal(t, "Deleted 1 review(s) for JANE DOE", env.Message)

	// Second delete finds nothing.
	resp, env = s.do(t, http.MethodDelete, "/reviews", gin.H{"name": "JANE DOE"})
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.False(t, env.OK)
	require.Equal(t, "No reviews found for JANE DOE", env.Error)
}

func TestProxyFallback(t *testing.T) {
	s := setupSuite(t)

	resp, _ := s.do(t, http.MethodPost, "/v1/chat/completions", gin.H{
		"messages": []gin.H{{"role": "user", "content": "hello"}},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"id":"cmpl-e2e","choices":[]}`, resp.Body.String())
}

func TestUnknownRouteIs404(t *testing.T) {
	s := setupSuite(t)

	resp, env := s.do(t, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.False(t, env.OK)
}
