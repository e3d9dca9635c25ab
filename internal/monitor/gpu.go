package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/exec"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor/parsers"
)

// GPU query fields passed to --query-gpu, one invocation each.
const (
	gpuFieldTemp   = "temperature.gpu"
	gpuFieldLoad   = "utilization.gpu"
	gpuFieldMemory = "memory.used,memory.total"

	gpuFormatFlag = "--format=csv,noheader,nounits"
)

// GPUSource provides a GPU reading per poll. Implementations never fail;
// problems are reported as an unavailable reading.
type GPUSource interface {
	Query(ctx context.Context) GPUReading
}

// GPUQuerier reads GPU temperature, load and memory by running nvidia-smi.
type GPUQuerier struct {
	runner  exec.Runner
	command string
	timeout time.Duration
	enabled bool
	log     logger.Logger
}

// NewGPUQuerier creates a querier from the gpu config section.
// A nil runner uses exec.LocalRunner; a nil logger uses logger.Default().
func NewGPUQuerier(cfg config.GPUConfig, runner exec.Runner, log logger.Logger) *GPUQuerier {
	if runner == nil {
		runner = exec.LocalRunner{}
	}
	if log == nil {
		log = logger.Default()
	}
	return &GPUQuerier{
		runner:  runner,
		command: cfg.Command,
		timeout: cfg.Timeout,
		enabled: cfg.Enabled,
		log:     log,
	}
}

// Query runs the three GPU queries in order. The first one that fails
// ends the query and the whole reading is reported as unavailable.
func (q *GPUQuerier) Query(ctx context.Context) GPUReading {
	if !q.enabled {
		return GPUUnavailable("gpu queries disabled")
	}

	out, err := q.run(ctx, gpuFieldTemp)
	if err != nil {
		return q.unavailable(gpuFieldTemp, err)
	}
	temp, err := parsers.ParseNvidiaSMIValue(out)
	if err != nil {
		return q.unavailable(gpuFieldTemp, err)
	}

	out, err = q.run(ctx, gpuFieldLoad)
	if err != nil {
		return q.unavailable(gpuFieldLoad, err)
	}
	load, err := parsers.ParseNvidiaSMIValue(out)
	if err != nil {
		return q.unavailable(gpuFieldLoad, err)
	}

	out, err = q.run(ctx, gpuFieldMemory)
	if err != nil {
		return q.unavailable(gpuFieldMemory, err)
	}
	used, total, err := parsers.ParseNvidiaSMIMemory(out)
	if err != nil {
		return q.unavailable(gpuFieldMemory, err)
	}

	return GPUReading{
		Available:   true,
		TempCelsius: temp,
		LoadPercent: load,
		MemUsedMB:   used,
		MemTotalMB:  total,
	}
}

// run executes one query and returns its stdout.
// A non-zero exit status counts as a failure.
func (q *GPUQuerier) run(ctx context.Context, field string) (string, error) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	res, err := q.runner.Run(ctx, q.command, "--query-gpu="+field, gpuFormatFlag)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(string(res.Stderr))
		if stderr == "" {
			return "", fmt.Errorf("%s exited with status %d", q.command, res.ExitCode)
		}
		return "", fmt.Errorf("%s exited with status %d: %s", q.command, res.ExitCode, stderr)
	}
	return string(res.Stdout), nil
}

func (q *GPUQuerier) unavailable(field string, err error) GPUReading {
	reason := fmt.Sprintf("%s: %v", field, err)
	q.log.Debug("gpu not detected (%s)", reason)
	return GPUUnavailable(reason)
}
