package common

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler adapts any error returned by a handler to the uniform wire
// error shape. Router errors keep their own status code; everything else,
// including simulated failures and sensor read errors, maps to HTTP 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(ErrorResponse{
		Error: err.Error(),
	})
}
