package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file name.
	ConfigFileName = ".sysmon.yaml"
	// GlobalConfigDir is the directory for the per-user config.
	GlobalConfigDir = ".config/sysmon"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SYSMON_GPU_COMMAND.
	EnvPrefix = "SYSMON"
)

// Load reads config from the specified path. Environment overrides apply on top.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Check the path passed to --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sysmon.yaml in the current directory
// 3. ~/.config/sysmon/config.yaml
//
// Returns the path to the config file, or empty string if none exists.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check the path is correct and readable")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads the config found by Find, or defaults plus environment
// overrides when no file exists. The result is validated.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	var cfg *Config
	if path == "" {
		cfg, err = parseConfig(newViper(), "environment")
	} else {
		cfg, err = Load(path)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance with defaults registered for every key,
// which is what lets AutomaticEnv overrides reach Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults mirrors DefaultConfig in viper's key space.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("cpu_sample_window", d.CPUSampleWindow.String())
	v.SetDefault("history_size", d.HistorySize)
	v.SetDefault("graph_height", d.GraphHeight)
	v.SetDefault("clamp", d.Clamp)
	v.SetDefault("gpu.enabled", d.GPU.Enabled)
	v.SetDefault("gpu.command", d.GPU.Command)
	v.SetDefault("gpu.timeout", d.GPU.Timeout.String())
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.DiskPath = os.ExpandEnv(cfg.DiskPath)
	return cfg, nil
}
