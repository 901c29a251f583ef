package demo

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all demo API routes with the Fiber application.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/data", handler.DataHandler)
	api.Get("/slow", handler.SlowHandler)
	api.Get("/error", handler.ErrorHandler)
}
