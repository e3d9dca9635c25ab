package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// MaxCPUSampleWindow keeps one poll well inside the one second refresh.
const MaxCPUSampleWindow = 900 * time.Millisecond

// Validate checks the config for values the dashboard cannot work with.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DiskPath) == "" {
		return errors.New(errors.ErrConfig,
			"disk_path is empty",
			"Set disk_path to a mount point such as / or remove it to use the default")
	}

	if cfg.CPUSampleWindow < 0 || cfg.CPUSampleWindow > MaxCPUSampleWindow {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("cpu_sample_window %s is out of range", cfg.CPUSampleWindow),
			fmt.Sprintf("Use a window between 0s and %s", MaxCPUSampleWindow))
	}

	if cfg.HistorySize < 2 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size %d is too small to draw a line", cfg.HistorySize),
			"Use at least 2 samples (the default is 60)")
	}

	if cfg.GraphHeight < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("graph_height %d must be at least 1 row", cfg.GraphHeight),
			"Remove graph_height to use the default of 3")
	}

	if cfg.GPU.Enabled && strings.TrimSpace(cfg.GPU.Command) == "" {
		return errors.New(errors.ErrConfig,
			"gpu.command is empty",
			"Set gpu.command to nvidia-smi or set gpu.enabled to false")
	}

	if cfg.GPU.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"gpu.timeout can't be negative",
			"Use 0 to wait indefinitely or a duration like 2s")
	}

	return nil
}
