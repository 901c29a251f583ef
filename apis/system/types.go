package system

import (
	"time"

	"github.com/DornelassDev/demo-app/pkg/sysinfo"
)

// SystemResponse is the response returned by the system metrics endpoint.
// Memory, disk, and network serialize as flat numeric mappings.
type SystemResponse struct {
	CPUPercent float64               `json:"cpu_percent"`
	Memory     *sysinfo.MemoryStats  `json:"memory"`
	Disk       *sysinfo.DiskStats    `json:"disk"`
	Network    *sysinfo.NetworkStats `json:"network"`
	Timestamp  time.Time             `json:"timestamp"`
}
