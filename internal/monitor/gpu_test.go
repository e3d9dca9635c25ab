package monitor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/exec"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers nvidia-smi queries keyed by the --query-gpu field.
type fakeRunner struct {
	results map[string]exec.Result
	errs    map[string]error
	calls   []string
	block   bool
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (exec.Result, error) {
	if len(args) == 0 {
		return exec.Result{ExitCode: 2}, nil
	}
	field := strings.TrimPrefix(args[0], "--query-gpu=")
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))

	if f.block {
		<-ctx.Done()
		return exec.Result{ExitCode: -1}, ctx.Err()
	}
	if err := f.errs[field]; err != nil {
		return exec.Result{ExitCode: -1}, err
	}
	res, ok := f.results[field]
	if !ok {
		return exec.Result{ExitCode: 127, Stderr: []byte("unexpected field")}, nil
	}
	return res, nil
}

func workingGPU() *fakeRunner {
	return &fakeRunner{results: map[string]exec.Result{
		gpuFieldTemp:   {Stdout: []byte("65\n")},
		gpuFieldLoad:   {Stdout: []byte("45\n")},
		gpuFieldMemory: {Stdout: []byte("2048, 8192\n")},
	}}
}

func gpuConfig() config.GPUConfig {
	return config.DefaultConfig().GPU
}

func TestGPUQuerier_Available(t *testing.T) {
	runner := workingGPU()
	q := NewGPUQuerier(gpuConfig(), runner, logger.Noop())

	r := q.Query(context.Background())

	assert.Equal(t, GPUReading{Available: true, TempCelsius: 65, LoadPercent: 45, MemUsedMB: 2048, MemTotalMB: 8192}, r)
	assert.Equal(t, []string{
		"nvidia-smi --query-gpu=temperature.gpu --format=csv,noheader,nounits",
		"nvidia-smi --query-gpu=utilization.gpu --format=csv,noheader,nounits",
		"nvidia-smi --query-gpu=memory.used,memory.total --format=csv,noheader,nounits",
	}, runner.calls)
}

func TestGPUQuerier_MultiGPUUsesFirstLine(t *testing.T) {
	runner := workingGPU()
	runner.results[gpuFieldTemp] = exec.Result{Stdout: []byte("61\n80\n")}
	runner.results[gpuFieldMemory] = exec.Result{Stdout: []byte("100, 200\n300, 400\n")}

	r := NewGPUQuerier(gpuConfig(), runner, logger.Noop()).Query(context.Background())

	require.True(t, r.Available)
	assert.Equal(t, 61, r.TempCelsius)
	assert.Equal(t, 100, r.MemUsedMB)
	assert.Equal(t, 200, r.MemTotalMB)
}

func TestGPUQuerier_FirstFailureShortCircuits(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*fakeRunner)
		wantCalls int
	}{
		{
			name: "tool missing",
			mutate: func(f *fakeRunner) {
				f.errs = map[string]error{gpuFieldTemp: errors.New("executable file not found in $PATH")}
			},
			wantCalls: 1,
		},
		{
			name: "non-zero exit",
			mutate: func(f *fakeRunner) {
				f.results[gpuFieldTemp] = exec.Result{ExitCode: 9, Stderr: []byte("NVIDIA-SMI has failed")}
			},
			wantCalls: 1,
		},
		{
			name: "load not available",
			mutate: func(f *fakeRunner) {
				f.results[gpuFieldLoad] = exec.Result{Stdout: []byte("[N/A]\n")}
			},
			wantCalls: 2,
		},
		{
			name: "memory unparsable",
			mutate: func(f *fakeRunner) {
				f.results[gpuFieldMemory] = exec.Result{Stdout: []byte("lots\n")}
			},
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := workingGPU()
			tt.mutate(runner)
			log := logger.NewBufferLogger()

			r := NewGPUQuerier(gpuConfig(), runner, log).Query(context.Background())

			assert.False(t, r.Available)
			assert.Zero(t, r.TempCelsius)
			assert.Zero(t, r.LoadPercent)
			assert.NotEmpty(t, r.Reason)
			assert.Len(t, runner.calls, tt.wantCalls)
			assert.True(t, log.HasLevel("debug"))
		})
	}
}

func TestGPUQuerier_Disabled(t *testing.T) {
	runner := workingGPU()
	cfg := gpuConfig()
	cfg.Enabled = false

	r := NewGPUQuerier(cfg, runner, logger.Noop()).Query(context.Background())

	assert.False(t, r.Available)
	assert.Empty(t, runner.calls)
}

func TestGPUQuerier_CustomCommand(t *testing.T) {
	runner := workingGPU()
	cfg := gpuConfig()
	cfg.Command = "/usr/local/bin/nvidia-smi"

	NewGPUQuerier(cfg, runner, logger.Noop()).Query(context.Background())

	require.NotEmpty(t, runner.calls)
	assert.True(t, strings.HasPrefix(runner.calls[0], "/usr/local/bin/nvidia-smi "))
}

func TestGPUQuerier_Timeout(t *testing.T) {
	runner := &fakeRunner{block: true}
	cfg := gpuConfig()
	cfg.Timeout = 20 * time.Millisecond

	start := time.Now()
	r := NewGPUQuerier(cfg, runner, logger.Noop()).Query(context.Background())

	assert.False(t, r.Available)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Len(t, runner.calls, 1)
}
