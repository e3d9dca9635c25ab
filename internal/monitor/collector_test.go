package monitor

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGPU struct {
	reading GPUReading
	calls   int
}

func (s *staticGPU) Query(context.Context) GPUReading {
	s.calls++
	return s.reading
}

// fakeOSCollector returns a collector whose OS queries return fixed values.
func fakeOSCollector(t *testing.T, gpu GPUSource) *Collector {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DiskPath = "/data"

	c := NewCollector(cfg, gpu, logger.Noop())
	c.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	c.cpuPercent = func(_ context.Context, interval time.Duration, percpu bool) ([]float64, error) {
		assert.Equal(t, 500*time.Millisecond, interval)
		assert.False(t, percpu)
		return []float64{42.5}, nil
	}
	c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 16 * gib, Used: 8 * gib, UsedPercent: 50}, nil
	}
	c.diskUsage = func(_ context.Context, path string) (*disk.UsageStat, error) {
		assert.Equal(t, "/data", path)
		return &disk.UsageStat{Path: path, Total: 200 * gib, Used: 110 * gib, UsedPercent: 55.2}, nil
	}
	return c
}

func TestCollector_Poll(t *testing.T) {
	gpu := &staticGPU{reading: GPUReading{Available: true, TempCelsius: 70, LoadPercent: 10, MemUsedMB: 1, MemTotalMB: 2}}
	c := fakeOSCollector(t, gpu)

	snap, err := c.Poll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42.5, snap.CPUPercent)
	assert.Equal(t, 50.0, snap.RAMPercent)
	assert.Equal(t, 8*gib, snap.RAMUsedBytes)
	assert.Equal(t, 16*gib, snap.RAMTotalBytes)
	assert.Equal(t, 55.2, snap.DiskPercent)
	assert.Equal(t, 110*gib, snap.DiskUsedBytes)
	assert.Equal(t, 200*gib, snap.DiskTotalBytes)
	assert.Equal(t, gpu.reading, snap.GPU)
	assert.Equal(t, 1, gpu.calls)
	assert.False(t, snap.Timestamp.IsZero())
}

func TestCollector_PollGPUUnavailableIsNotAnError(t *testing.T) {
	c := fakeOSCollector(t, &staticGPU{reading: GPUUnavailable("missing")})

	snap, err := c.Poll(context.Background())

	require.NoError(t, err)
	assert.False(t, snap.GPU.Available)
}

func TestCollector_PollErrors(t *testing.T) {
	boom := stderrors.New("boom")

	tests := []struct {
		name    string
		mutate  func(*Collector)
		wantMsg string
	}{
		{
			name: "cpu query fails",
			mutate: func(c *Collector) {
				c.cpuPercent = func(context.Context, time.Duration, bool) ([]float64, error) { return nil, boom }
			},
			wantMsg: "CPU usage",
		},
		{
			name: "cpu query returns nothing",
			mutate: func(c *Collector) {
				c.cpuPercent = func(context.Context, time.Duration, bool) ([]float64, error) { return nil, nil }
			},
			wantMsg: "no data",
		},
		{
			name: "memory query fails",
			mutate: func(c *Collector) {
				c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) { return nil, boom }
			},
			wantMsg: "memory usage",
		},
		{
			name: "disk query fails",
			mutate: func(c *Collector) {
				c.diskUsage = func(context.Context, string) (*disk.UsageStat, error) { return nil, boom }
			},
			wantMsg: "/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpu := &staticGPU{}
			c := fakeOSCollector(t, gpu)
			tt.mutate(c)

			_, err := c.Poll(context.Background())

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrMetrics))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, gpu.calls, "GPU is not queried after an OS failure")
		})
	}
}

func TestNewCollector_DefaultsToGPUQuerier(t *testing.T) {
	c := NewCollector(config.DefaultConfig(), nil, logger.Noop())

	q, ok := c.gpu.(*GPUQuerier)
	require.True(t, ok)
	assert.Equal(t, "nvidia-smi", q.command)
	assert.True(t, q.enabled)
}
