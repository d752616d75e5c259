package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"request-metrics/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
		},
		Log: configs.LogConfig{Level: "error"},
		Metrics: configs.MetricsConfig{
			EndpointPrefix:     []string{"metrics"},
			InstrumentApp:      false,
			InstrumentEndpoint: true,
			RuntimeCollectors:  true,
		},
	}
}

func TestNew_ServesNamespaces(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http\nruntime\n", rr.Body.String())

	rr = httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics/runtime", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestNew_WithoutRuntimeCollectors(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.RuntimeCollectors = false

	application, err := New(cfg)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "http\n", rr.Body.String())
}

func TestNew_HealthCheck(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics/http", nil))
	assert.Contains(t, rr.Body.String(), `handler="healthcheck"`)
}

func TestNew_RequestLatencyLayers(t *testing.T) {
	tests := []struct {
		name          string
		instrumentApp bool
		want          string
		notWant       string
	}{
		{
			name:    "per route",
			want:    `http_request_duration_seconds_count{handler="/echo",method="POST",status_code="200"} 1`,
			notWant: `handler="app"`,
		},
		{
			name:          "whole app",
			instrumentApp: true,
			want:          `http_request_duration_seconds_count{handler="app",method="POST",status_code="200"} 1`,
			notWant:       `handler="/echo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Metrics.InstrumentApp = tt.instrumentApp
			application, err := New(cfg)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ping")))
			require.Equal(t, http.StatusOK, rr.Code)

			rr = httptest.NewRecorder()
			application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics/http", nil))
			assert.Contains(t, rr.Body.String(), tt.want)
			assert.NotContains(t, rr.Body.String(), tt.notWant)
		})
	}
}

func TestNew_InvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "loud"

	application, err := New(cfg)
	assert.Nil(t, application)
	assert.ErrorContains(t, err, "failed to initialize logger")
}

func TestShutdown_NotStarted(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)

	assert.NoError(t, application.Shutdown(context.Background()))
}
