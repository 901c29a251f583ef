package system

import (
	"time"

	"github.com/DornelassDev/demo-app/pkg/sysinfo"

	"github.com/gofiber/fiber/v2"
)

// Handler handles system metrics requests.
type Handler struct {
	// reader reads host-wide resource usage
	reader sysinfo.SystemReader

	// sampleInterval is the blocking window for the CPU sample
	sampleInterval time.Duration

	// diskPath is the filesystem measured for disk usage
	diskPath string
}

// NewHandler creates a new system API handler backed by the given system
// metrics reader. The handler blocks each request for sampleInterval while
// sampling CPU usage and reports disk usage for diskPath.
func NewHandler(reader sysinfo.SystemReader, sampleInterval time.Duration, diskPath string) *Handler {
	return &Handler{
		reader:         reader,
		sampleInterval: sampleInterval,
		diskPath:       diskPath,
	}
}

// SystemHandler handles GET /api/system.
// It collects CPU, memory, disk, and network statistics for the whole host.
// Any sensor failure propagates to the app-level error handler.
func (h *Handler) SystemHandler(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cpuPercent, err := h.reader.CPUPercent(ctx, h.sampleInterval)
	if err != nil {
		return err
	}

	memory, err := h.reader.Memory(ctx)
	if err != nil {
		return err
	}

	diskUsage, err := h.reader.DiskUsage(ctx, h.diskPath)
	if err != nil {
		return err
	}

	network, err := h.reader.NetworkIO(ctx)
	if err != nil {
		return err
	}

	return c.JSON(SystemResponse{
		CPUPercent: cpuPercent,
		Memory:     memory,
		Disk:       diskUsage,
		Network:    network,
		Timestamp:  time.Now(),
	})
}
