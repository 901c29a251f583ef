package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all health API routes with the Fiber application.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.HealthHandler)
}
