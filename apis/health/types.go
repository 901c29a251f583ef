package health

import "time"

// HealthResponse represents the health check response structure.
// It reports liveness together with resource usage of the serving
// process for monitoring purposes.
type HealthResponse struct {
	// Status indicates the current server status (e.g., "healthy")
	Status string `json:"status"`

	// Uptime is the seconds elapsed since the process started
	Uptime float64 `json:"uptime"`

	// MemoryPercent is the process memory usage in percent of system memory
	MemoryPercent float64 `json:"memory_percent"`

	// CPUPercent is the process CPU usage percentage
	CPUPercent float64 `json:"cpu_percent"`

	// Timestamp is when the health check was performed
	Timestamp time.Time `json:"timestamp"`
}
