package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DornelassDev/demo-app/apis/common"
	"github.com/DornelassDev/demo-app/apis/demo"
	"github.com/DornelassDev/demo-app/apis/health"
	"github.com/DornelassDev/demo-app/apis/system"
	"github.com/DornelassDev/demo-app/internal/version"
	"github.com/DornelassDev/demo-app/pkg/sysinfo"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRootHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/", RootHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected 200 status")

	var body map[string]string
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected valid JSON body")

	assert.Equal(t, "Hello from Demo App!", body["message"], "Expected the greeting message")
	assert.Equal(t, version.Project, body["project"], "Expected the project identifier")

	_, err = time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err, "Expected a well-formed timestamp")
}

func TestSetupRoutes_AllEndpoints(t *testing.T) {
	proc, err := sysinfo.NewProcessReader()
	if err != nil {
		t.Fatalf("failed to create process reader: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
	})
	SetupRoutes(app,
		health.NewHandler(proc),
		demo.NewHandler(demo.NewRand(1), demo.Config{}),
		system.NewHandler(sysinfo.NewSystemReader(), 0, "/"),
	)

	// zero-valued demo config keeps delays at zero and the error rate at zero,
	// so every endpoint answers 200
	routes := []string{"/", "/health", "/api/data", "/api/slow", "/api/error", "/api/system"}
	for _, route := range routes {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, route, nil), 10000)
		assert.NoError(t, err, "Expected %s to complete", route)
		if resp != nil {
			assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected %s to be registered and healthy", route)
			resp.Body.Close()
		}
	}
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	proc, err := sysinfo.NewProcessReader()
	if err != nil {
		t.Fatalf("failed to create process reader: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
	})
	SetupRoutes(app,
		health.NewHandler(proc),
		demo.NewHandler(demo.NewRand(1), demo.Config{}),
		system.NewHandler(sysinfo.NewSystemReader(), 0, "/"),
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.NoError(t, err, "Expected request to complete")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "Expected 404 for unregistered routes")

	var body common.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err, "Expected the error response shape")
	assert.NotEmpty(t, body.Error, "Expected an error message")
}
