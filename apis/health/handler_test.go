package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DornelassDev/demo-app/apis/common"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// fakeProcessReader is a fixed-value ProcessReader for tests.
type fakeProcessReader struct {
	uptime float64
	memory float64
	cpu    float64
	err    error
}

func (f *fakeProcessReader) Uptime(ctx context.Context) (float64, error) {
	return f.uptime, f.err
}

func (f *fakeProcessReader) MemoryPercent(ctx context.Context) (float64, error) {
	return f.memory, f.err
}

func (f *fakeProcessReader) CPUPercent(ctx context.Context) (float64, error) {
	return f.cpu, f.err
}

func newTestApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
	})
	RegisterRoutes(app, handler)
	return app
}

func TestHealthHandler_Success(t *testing.T) {
	reader := &fakeProcessReader{
		uptime: 123.5,
		memory: 12.25,
		cpu:    3.75,
	}
	app := newTestApp(NewHandler(reader))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected 200 status")

	var body HealthResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected valid JSON body")

	assert.Equal(t, StatusHealthy, body.Status, "Expected healthy status")
	assert.Equal(t, 123.5, body.Uptime, "Expected uptime from reader")
	assert.Equal(t, 12.25, body.MemoryPercent, "Expected memory percent from reader")
	assert.Equal(t, 3.75, body.CPUPercent, "Expected CPU percent from reader")
	assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute, "Expected recent timestamp")
}

func TestHealthHandler_PercentBounds(t *testing.T) {
	tests := []struct {
		name   string
		memory float64
		cpu    float64
	}{
		{
			name:   "idle process",
			memory: 0,
			cpu:    0,
		},
		{
			name:   "busy process",
			memory: 87.5,
			cpu:    99.9,
		},
		{
			name:   "saturated process",
			memory: 100,
			cpu:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(NewHandler(&fakeProcessReader{memory: tt.memory, cpu: tt.cpu}))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.NoError(t, err, "Expected request to complete")
			defer resp.Body.Close()

			var body HealthResponse
			err = json.NewDecoder(resp.Body).Decode(&body)
			assert.NoError(t, err, "Expected valid JSON body")

			assert.GreaterOrEqual(t, body.MemoryPercent, 0.0, "Expected memory percent lower bound")
			assert.LessOrEqual(t, body.MemoryPercent, 100.0, "Expected memory percent upper bound")
			assert.GreaterOrEqual(t, body.CPUPercent, 0.0, "Expected CPU percent lower bound")
			assert.LessOrEqual(t, body.CPUPercent, 100.0, "Expected CPU percent upper bound")
		})
	}
}

func TestHealthHandler_UptimeNonDecreasing(t *testing.T) {
	reader := &fakeProcessReader{uptime: 10}
	app := newTestApp(NewHandler(reader))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err, "Expected first request to complete")
	var first HealthResponse
	err = json.NewDecoder(resp.Body).Decode(&first)
	resp.Body.Close()
	assert.NoError(t, err, "Expected valid JSON body")

	reader.uptime = 20

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err, "Expected second request to complete")
	var second HealthResponse
	err = json.NewDecoder(resp.Body).Decode(&second)
	resp.Body.Close()
	assert.NoError(t, err, "Expected valid JSON body")

	assert.GreaterOrEqual(t, second.Uptime, first.Uptime, "Expected uptime to be non-decreasing")
}

func TestHealthHandler_ReaderFailure(t *testing.T) {
	app := newTestApp(NewHandler(&fakeProcessReader{
		err: errors.New("process metrics unavailable"),
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "Expected 500 on reader failure")

	var body common.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected valid JSON error body")
	assert.Equal(t, "process metrics unavailable", body.Error, "Expected reader error message on the wire")
}
