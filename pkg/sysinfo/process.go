package sysinfo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessReader reports resource usage for the running server process.
// Handlers depend on this capability instead of reading platform sensors
// directly, so tests can substitute fixed-value implementations.
type ProcessReader interface {
	// Uptime returns the seconds elapsed since the process started.
	Uptime(ctx context.Context) (float64, error)

	// MemoryPercent returns the process memory usage as a percentage
	// of total system memory, bounded to [0, 100].
	MemoryPercent(ctx context.Context) (float64, error)

	// CPUPercent returns the process CPU usage percentage, bounded to [0, 100].
	CPUPercent(ctx context.Context) (float64, error)
}

// processReader reads metrics for the server's own process via gopsutil.
type processReader struct {
	proc    *process.Process
	started time.Time
}

// NewProcessReader creates a ProcessReader bound to the current process.
// It resolves the process handle and its creation time up front and
// returns an error if the platform sensors are unavailable.
func NewProcessReader() (ProcessReader, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open process handle: %w", err)
	}

	createdMs, err := proc.CreateTime()
	if err != nil {
		return nil, fmt.Errorf("failed to read process create time: %w", err)
	}

	return &processReader{
		proc:    proc,
		started: time.UnixMilli(createdMs),
	}, nil
}

func (r *processReader) Uptime(ctx context.Context) (float64, error) {
	return time.Since(r.started).Seconds(), nil
}

func (r *processReader) MemoryPercent(ctx context.Context) (float64, error) {
	percent, err := r.proc.MemoryPercentWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read process memory percent: %w", err)
	}
	return clampPercent(float64(percent)), nil
}

func (r *processReader) CPUPercent(ctx context.Context) (float64, error) {
	percent, err := r.proc.CPUPercentWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read process CPU percent: %w", err)
	}
	return clampPercent(percent), nil
}
