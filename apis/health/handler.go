package health

import (
	"time"

	"github.com/DornelassDev/demo-app/pkg/sysinfo"

	"github.com/gofiber/fiber/v2"
)

// StatusHealthy is the status reported while the process metrics are readable.
const StatusHealthy = "healthy"

// Handler handles health check requests.
type Handler struct {
	// proc reads resource usage for the serving process
	proc sysinfo.ProcessReader
}

// NewHandler creates a new health API handler backed by the given
// process metrics reader.
func NewHandler(proc sysinfo.ProcessReader) *Handler {
	return &Handler{proc: proc}
}

// HealthHandler handles GET /health.
// It reads uptime, memory percent, and CPU percent for the serving process
// and returns them as a health response. Any reader failure propagates to
// the app-level error handler.
func (h *Handler) HealthHandler(c *fiber.Ctx) error {
	ctx := c.UserContext()

	uptime, err := h.proc.Uptime(ctx)
	if err != nil {
		return err
	}

	memoryPercent, err := h.proc.MemoryPercent(ctx)
	if err != nil {
		return err
	}

	cpuPercent, err := h.proc.CPUPercent(ctx)
	if err != nil {
		return err
	}

	return c.JSON(HealthResponse{
		Status:        StatusHealthy,
		Uptime:        uptime,
		MemoryPercent: memoryPercent,
		CPUPercent:    cpuPercent,
		Timestamp:     time.Now(),
	})
}
