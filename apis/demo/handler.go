package demo

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Fixed messages returned by the demo endpoints.
const (
	SlowMessage    = "This was a slow request"
	SuccessMessage = "Success!"
)

// ErrSimulated is the deliberate failure raised by the error endpoint so
// callers can exercise their own error handling against a live service.
var ErrSimulated = errors.New("Random error for testing")

// Inclusive bounds for the mock business metrics.
const (
	customersMin, customersMax = 100, 1000
	salesMin, salesMax         = 50, 500
	profitMin, profitMax       = 1000, 10000
)

// DelayRange bounds a uniformly drawn simulated processing delay.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Config carries the simulation parameters for the demo endpoints.
type Config struct {
	// DataDelay is the simulated processing window for the data endpoint
	DataDelay DelayRange

	// SlowDelay is the simulated processing window for the slow endpoint
	SlowDelay DelayRange

	// ErrorRate is the probability in [0, 1] that the error endpoint fails
	ErrorRate float64
}

// Handler handles the demo API requests: mock business data, simulated
// latency, and simulated failures. Each request is served from the current
// random draw alone; no state is carried between requests.
type Handler struct {
	rng   Rand
	sleep func(time.Duration)
	cfg   Config
}

// NewHandler creates a demo API handler drawing from the given random
// source. Simulated delays block via time.Sleep; tests replace the sleep
// function to avoid waiting real time.
func NewHandler(rng Rand, cfg Config) *Handler {
	return &Handler{
		rng:   rng,
		sleep: time.Sleep,
		cfg:   cfg,
	}
}

// DataHandler handles GET /api/data.
// It blocks for a uniformly drawn simulated processing delay, then returns
// mock business metrics drawn independently from fixed inclusive ranges.
func (h *Handler) DataHandler(c *fiber.Ctx) error {
	h.sleep(h.delayIn(h.cfg.DataDelay))

	return c.JSON(DataResponse{
		Customers: h.intBetween(customersMin, customersMax),
		Sales:     h.intBetween(salesMin, salesMax),
		Profit:    h.intBetween(profitMin, profitMax),
		Timestamp: time.Now(),
	})
}

// SlowHandler handles GET /api/slow.
// It blocks for a uniformly drawn delay from the slow window and returns a
// fixed message. The endpoint exists to exercise timeout and latency
// handling in callers.
func (h *Handler) SlowHandler(c *fiber.Ctx) error {
	h.sleep(h.delayIn(h.cfg.SlowDelay))

	return c.JSON(SlowResponse{
		Message:   SlowMessage,
		Timestamp: time.Now(),
	})
}

// ErrorHandler handles GET /api/error.
// It fails with ErrSimulated at the configured probability and returns a
// fixed success message otherwise.
func (h *Handler) ErrorHandler(c *fiber.Ctx) error {
	if h.rng.Float64() < h.cfg.ErrorRate {
		return ErrSimulated
	}

	return c.JSON(MessageResponse{Message: SuccessMessage})
}

// intBetween returns a uniform draw from [min, max] inclusive.
func (h *Handler) intBetween(min, max int) int {
	return min + h.rng.Intn(max-min+1)
}

// delayIn returns a uniform draw within the range. Degenerate ranges
// collapse to the minimum, which lets tests run with zero delay.
func (h *Handler) delayIn(r DelayRange) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(h.rng.Float64()*float64(r.Max-r.Min))
}
