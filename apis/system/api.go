package system

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the system metrics route on the app.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Get("/system", handler.SystemHandler)
}
