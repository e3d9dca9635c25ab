package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Source produces one Snapshot per call. The dashboard polls it once per refresh.
type Source interface {
	Poll(ctx context.Context) (Snapshot, error)
}

// Collector gathers metrics for the local machine.
// CPU, RAM and disk come from gopsutil; the GPU comes from a GPUSource.
type Collector struct {
	diskPath  string
	cpuWindow time.Duration
	gpu       GPUSource
	log       logger.Logger
	now       func() time.Time

	// OS queries, replaceable in tests
	cpuPercent    func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewCollector creates a collector from config. A nil gpu source builds a
// GPUQuerier from cfg.GPU; a nil logger uses logger.Default().
func NewCollector(cfg *config.Config, gpu GPUSource, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Default()
	}
	if gpu == nil {
		gpu = NewGPUQuerier(cfg.GPU, nil, log)
	}
	return &Collector{
		diskPath:      cfg.DiskPath,
		cpuWindow:     cfg.CPUSampleWindow,
		gpu:           gpu,
		log:           log,
		now:           time.Now,
		cpuPercent:    cpu.PercentWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
	}
}

// Poll takes one snapshot. The CPU reading blocks for the configured sample
// window. Any OS query failure is returned as an ErrMetrics error; GPU
// problems never fail the poll.
func (c *Collector) Poll(ctx context.Context) (Snapshot, error) {
	start := c.now()

	cpuPcts, err := c.cpuPercent(ctx, c.cpuWindow, false)
	if err != nil {
		return Snapshot{}, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read CPU usage",
			"Check that /proc is mounted and readable")
	}
	if len(cpuPcts) == 0 {
		return Snapshot{}, errors.New(errors.ErrMetrics,
			"CPU usage query returned no data",
			"This platform may not expose aggregate CPU times")
	}

	vm, err := c.virtualMemory(ctx)
	if err != nil {
		return Snapshot{}, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read memory usage",
			"Check that /proc/meminfo is readable")
	}

	du, err := c.diskUsage(ctx, c.diskPath)
	if err != nil {
		return Snapshot{}, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read disk usage for "+c.diskPath,
			"Set disk_path in .sysmon.yaml to an existing mount point")
	}

	snap := Snapshot{
		Timestamp:      start,
		CPUPercent:     cpuPcts[0],
		RAMPercent:     vm.UsedPercent,
		RAMUsedBytes:   vm.Used,
		RAMTotalBytes:  vm.Total,
		DiskPercent:    du.UsedPercent,
		DiskUsedBytes:  du.Used,
		DiskTotalBytes: du.Total,
		GPU:            c.gpu.Query(ctx),
	}

	c.log.Debug("poll took %s (cpu=%.1f ram=%.1f disk=%.1f gpu=%t)",
		c.now().Sub(start).Round(time.Millisecond), snap.CPUPercent, snap.RAMPercent, snap.DiskPercent, snap.GPU.Available)

	return snap, nil
}
