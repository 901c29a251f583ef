package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DornelassDev/demo-app/apis/common"
	"github.com/DornelassDev/demo-app/internal/config"

	"github.com/stretchr/testify/assert"
)

func quietConfig() *config.Config {
	// zero delay windows and a zero error rate keep test requests instant
	// and deterministic
	return &config.Config{
		Port:        config.DefaultPort,
		Environment: config.ValidEnvironmentDevelopment,
		LogLevel:    config.ValidLogLevelError,
		Demo: config.DemoConfig{
			Seed: 1,
		},
		System: config.SystemConfig{
			CPUSampleInterval: 0,
			DiskPath:          "/",
		},
	}
}

func TestNew_RegistersAllRoutes(t *testing.T) {
	srv := New(quietConfig())

	routes := []string{"/", "/health", "/api/data", "/api/slow", "/api/error", "/api/system", "/metrics"}
	for _, route := range routes {
		resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, route, nil), 10000)
		assert.NoError(t, err, "Expected %s to complete", route)
		if resp != nil {
			assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected %s to be registered", route)
			resp.Body.Close()
		}
	}
}

func TestNew_MetricsEndpointExposesRequestCounters(t *testing.T) {
	srv := New(quietConfig())

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err, "Expected request to complete")
	resp.Body.Close()

	resp, err = srv.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NoError(t, err, "Expected metrics scrape to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected 200 status")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err, "Expected readable metrics body")
	assert.True(t, strings.Contains(string(body), "http_requests_total"), "Expected request counters in the scrape")
}

func TestNew_ErrorResponseShape(t *testing.T) {
	cfg := quietConfig()
	cfg.Demo.ErrorRate = 1
	srv := New(cfg)

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/api/error", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "Expected 500 status")

	var body common.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected the error response shape")
	assert.Equal(t, "Random error for testing", body.Error, "Expected the simulated error message")
}

func TestNew_UnknownRouteShape(t *testing.T) {
	srv := New(quietConfig())

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/definitely-missing", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "Expected 404 status")

	var body common.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected the error response shape")
	assert.NotEmpty(t, body.Error, "Expected an error message")
}
