package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "plain error maps to 500",
			err:            errors.New("sensors unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "sensors unavailable",
		},
		{
			name:           "fiber error keeps its status",
			err:            fiber.NewError(fiber.StatusNotFound, "Cannot GET /nope"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "Cannot GET /nope",
		},
		{
			name:           "fiber teapot error keeps its status",
			err:            fiber.NewError(fiber.StatusTeapot, "short and stout"),
			expectedStatus: http.StatusTeapot,
			expectedError:  "short and stout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{
				ErrorHandler: ErrorHandler,
			})
			app.Get("/fail", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			assert.NoError(t, err, "Expected request to complete")
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Expected the mapped status code")

			var body ErrorResponse
			err = json.NewDecoder(resp.Body).Decode(&body)
			assert.NoError(t, err, "Expected the error response shape")
			assert.Equal(t, tt.expectedError, body.Error, "Expected the error message verbatim")
		})
	}
}
