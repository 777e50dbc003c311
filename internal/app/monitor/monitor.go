//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU     float64
	MEM     float64 // in MB
	Threads int32
}

// Monitor samples process resource usage for the footer
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	Self(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor bound to the running process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

// Self samples the running process
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return m.GetStats(ctx, m.pid)
}

// GetStats samples a process by pid; out-of-range pids yield empty stats
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	if threads, err := proc.NumThreadsWithContext(ctx); err == nil {
		stats.Threads = threads
	}

	return stats, nil
}

// Format renders stats for the footer
func (s Stats) Format() string {
	return fmt.Sprintf("cpu %4.1f%%  mem %s", s.CPU, FormatMemory(s.MEM))
}

// FormatMemory formats megabytes with a unit that keeps the value short
func FormatMemory(mb float64) string {
	switch {
	case mb <= 0:
		return "0 Mb"
	case mb < 1:
		return fmt.Sprintf("%.0f Kb", mb*1024)
	case mb >= 1024:
		return fmt.Sprintf("%.1f Gb", mb/1024)
	case mb >= 100:
		return fmt.Sprintf("%.0f Mb", mb)
	default:
		return fmt.Sprintf("%.1f Mb", mb)
	}
}
