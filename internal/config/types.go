package config

import "time"

// Defaults for every tunable. The poll interval is not among them: the
// dashboard always refreshes once per second.
const (
	DefaultDiskPath        = "/"
	DefaultCPUSampleWindow = 500 * time.Millisecond
	DefaultHistorySize     = 60
	DefaultGraphHeight     = 3
	DefaultGPUCommand      = "nvidia-smi"
)

// Config represents the optional sysmon configuration file.
type Config struct {
	// DiskPath is the mount point whose usage is reported as Storage.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`

	// CPUSampleWindow is how long each CPU utilization measurement blocks.
	CPUSampleWindow time.Duration `yaml:"cpu_sample_window" mapstructure:"cpu_sample_window"`

	// HistorySize is the number of samples each trend graph keeps.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// GraphHeight is the height of each trend graph in terminal rows.
	GraphHeight int `yaml:"graph_height" mapstructure:"graph_height"`

	// Clamp limits samples to 0-100 before they are drawn.
	Clamp bool `yaml:"clamp" mapstructure:"clamp"`

	GPU GPUConfig `yaml:"gpu" mapstructure:"gpu"`
}

// GPUConfig controls the external GPU query tool.
type GPUConfig struct {
	// Enabled toggles GPU querying. When false every GPU field reads "Not detected".
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Command is the query tool, looked up on PATH.
	Command string `yaml:"command" mapstructure:"command"`

	// Timeout bounds each invocation. Zero waits forever.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	return &Config{
		DiskPath:        DefaultDiskPath,
		CPUSampleWindow: DefaultCPUSampleWindow,
		HistorySize:     DefaultHistorySize,
		GraphHeight:     DefaultGraphHeight,
		Clamp:           true,
		GPU: GPUConfig{
			Enabled: true,
			Command: DefaultGPUCommand,
		},
	}
}
