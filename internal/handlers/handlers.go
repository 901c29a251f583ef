package handlers

import (
	"time"

	"github.com/DornelassDev/demo-app/apis/demo"
	"github.com/DornelassDev/demo-app/apis/health"
	"github.com/DornelassDev/demo-app/apis/system"
	"github.com/DornelassDev/demo-app/internal/version"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes for the demo application server.
// It registers API endpoints for health checks, demo data, and system metrics
// using the API machinery pattern.
// This function should be called during server initialization.
func SetupRoutes(app *fiber.App, healthHandler *health.Handler, demoHandler *demo.Handler, systemHandler *system.Handler) {
	// Register all APIs here - just add one line per API
	health.RegisterRoutes(app, healthHandler)
	demo.RegisterRoutes(app, demoHandler)
	system.RegisterRoutes(app, systemHandler)

	// Root endpoint
	app.Get("/", RootHandler)
}

// RootHandler handles requests to the root endpoint ("/").
// It returns a greeting with the project identifier and the current time.
func RootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Hello from Demo App!",
		"timestamp": time.Now(),
		"project":   version.Project,
	})
}
