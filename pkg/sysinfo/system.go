package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// SystemReader reports host-wide resource usage. The production
// implementation reads platform sensors via gopsutil; reads can fail on
// restricted platforms, and callers propagate those errors unchanged.
type SystemReader interface {
	// CPUPercent samples the system-wide CPU usage percentage. A positive
	// interval blocks for the full sampling window.
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)

	// Memory returns system-wide virtual memory statistics.
	Memory(ctx context.Context) (*MemoryStats, error)

	// DiskUsage returns usage statistics for the filesystem at path.
	DiskUsage(ctx context.Context, path string) (*DiskStats, error)

	// NetworkIO returns network I/O counters aggregated across all interfaces.
	NetworkIO(ctx context.Context) (*NetworkStats, error)
}

// systemReader is the gopsutil-backed SystemReader.
type systemReader struct{}

// NewSystemReader creates a SystemReader backed by the host's sensors.
func NewSystemReader() SystemReader {
	return &systemReader{}
}

func (s *systemReader) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to sample CPU percent: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("CPU percent sample is empty")
	}
	return clampPercent(percents[0]), nil
}

func (s *systemReader) Memory(ctx context.Context) (*MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return memoryStatsFrom(vm), nil
}

func (s *systemReader) DiskUsage(ctx context.Context, path string) (*DiskStats, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage for %s: %w", path, err)
	}
	return diskStatsFrom(usage), nil
}

func (s *systemReader) NetworkIO(ctx context.Context) (*NetworkStats, error) {
	// pernic=false returns a single entry aggregated across interfaces
	counters, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read network I/O counters: %w", err)
	}
	if len(counters) == 0 {
		return nil, fmt.Errorf("network I/O counters are empty")
	}
	return networkStatsFrom(counters[0]), nil
}

func memoryStatsFrom(vm *mem.VirtualMemoryStat) *MemoryStats {
	return &MemoryStats{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Free:      vm.Free,
		Percent:   vm.UsedPercent,
	}
}

func diskStatsFrom(usage *disk.UsageStat) *DiskStats {
	return &DiskStats{
		Total:   usage.Total,
		Used:    usage.Used,
		Free:    usage.Free,
		Percent: usage.UsedPercent,
	}
}

func networkStatsFrom(counters psnet.IOCountersStat) *NetworkStats {
	return &NetworkStats{
		BytesSent:   counters.BytesSent,
		BytesRecv:   counters.BytesRecv,
		PacketsSent: counters.PacketsSent,
		PacketsRecv: counters.PacketsRecv,
		ErrIn:       counters.Errin,
		ErrOut:      counters.Errout,
		DropIn:      counters.Dropin,
		DropOut:     counters.Dropout,
	}
}
