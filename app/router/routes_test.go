package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/super-niche-selector/app/dto"
	"github.com/amirphl/super-niche-selector/app/handlers"
	businessflow "github.com/amirphl/super-niche-selector/business_flow"
	"github.com/amirphl/super-niche-selector/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticDirectory struct {
	countries, languages string
}

func (s staticDirectory) DirectoryStatus() (string, string) {
	return s.countries, s.languages
}

func testConfig() *config.ProductionConfig {
	return &config.ProductionConfig{
		Server: config.ServerConfig{
			BodyLimit:       1024 * 1024,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
			GlobalRateLimit: 100,
			ExportRateLimit: 1,
			RateLimitWindow: time.Minute,
		},
		Metrics:    config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Deployment: config.DeploymentConfig{Environment: "development", Version: "test", CommitHash: "abc1234", BuildTime: "2026-10-01T00:00:00Z"},
	}
}

func newTestRouter(t *testing.T, directory DirectoryStatusReporter) Router {
	t.Helper()
	flow := businessflow.NewNicheFlow(nil, nil, nil, nil)
	r := NewFiberRouter(testConfig(), handlers.NewNicheHandler(flow), directory)
	r.SetupRoutes()
	return r
}

func call(t *testing.T, r Router, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.GetApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, staticDirectory{countries: "loaded", languages: "failed"})

	resp, raw := call(t, r, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var env struct {
		Success bool               `json:"success"`
		Data    dto.HealthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Data.Status)
	assert.Equal(t, "test", env.Data.Version)
	assert.Equal(t, "abc1234", env.Data.Commit)
	assert.Equal(t, "2026-10-01T00:00:00Z", env.Data.BuildTime)
	assert.Equal(t, "loaded/failed", env.Data.Directory)
}

func TestRouter_HealthWithoutDirectory(t *testing.T) {
	r := newTestRouter(t, nil)

	_, raw := call(t, r, http.MethodGet, "/api/v1/health", "")
	assert.Contains(t, string(raw), `"directory":"disabled"`)
}

func TestRouter_NotFound(t *testing.T) {
	r := newTestRouter(t, nil)

	resp, raw := call(t, r, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), `"NOT_FOUND"`)
}

func TestRouter_EstimateAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil)

	resp, _ := call(t, r, http.MethodPost, "/api/v1/niche/estimate", `{"category":"Wealth"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := call(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")
}

func TestRouter_SwaggerInDevelopment(t *testing.T) {
	r := newTestRouter(t, nil)

	resp, raw := call(t, r, http.MethodGet, "/api/v1/swagger.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "/api/v1/niche/estimate")
}

func TestRouter_ExportRateLimit(t *testing.T) {
	r := newTestRouter(t, nil)

	resp, _ := call(t, r, http.MethodPost, "/api/v1/niche/export/png", `{"category":"Health"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, raw := call(t, r, http.MethodPost, "/api/v1/niche/export/png", `{"category":"Health"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(raw), "RATE_LIMIT_EXCEEDED")
}
