package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/", cfg.DiskPath)
	assert.Equal(t, 500*time.Millisecond, cfg.CPUSampleWindow)
	assert.Equal(t, 60, cfg.HistorySize)
	assert.Equal(t, 3, cfg.GraphHeight)
	assert.True(t, cfg.Clamp)
	assert.True(t, cfg.GPU.Enabled)
	assert.Equal(t, "nvidia-smi", cfg.GPU.Command)
	assert.Zero(t, cfg.GPU.Timeout, "no timeout by default")
	assert.NoError(t, Validate(cfg))
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, `
disk_path: /home
history_size: 120
gpu:
  timeout: 2s
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/home", cfg.DiskPath)
	assert.Equal(t, 120, cfg.HistorySize)
	assert.Equal(t, 2*time.Second, cfg.GPU.Timeout)
	// untouched keys keep defaults
	assert.Equal(t, "nvidia-smi", cfg.GPU.Command)
	assert.True(t, cfg.GPU.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.CPUSampleWindow)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "gpu:\n  command: nvidia-smi\n")
	t.Setenv("SYSMON_GPU_COMMAND", "/opt/bin/nvidia-smi")
	t.Setenv("SYSMON_HISTORY_SIZE", "30")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/nvidia-smi", cfg.GPU.Command)
	assert.Equal(t, 30, cfg.HistorySize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "gpu: [unterminated\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "custom.yaml", "clamp: false\n")

		found, err := Find(path)

		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path that does not exist is an error", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("local file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		writeConfig(t, dir, ConfigFileName, "clamp: false\n")
		t.Chdir(dir)

		found, err := Find("")

		require.NoError(t, err)
		assert.Equal(t, ConfigFileName, filepath.Base(found))
	})

	t.Run("global file under home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())
		want := writeConfig(t, home, filepath.Join(GlobalConfigDir, GlobalConfigFile), "clamp: false\n")

		found, err := Find("")

		require.NoError(t, err)
		assert.Equal(t, want, found)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		found, err := Find("")

		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestLoadOrDefault_NoFileUsesEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SYSMON_GPU_ENABLED", "false")

	cfg, err := LoadOrDefault("")

	require.NoError(t, err)
	assert.False(t, cfg.GPU.Enabled)
	assert.Equal(t, 60, cfg.HistorySize)
}

func TestLoadOrDefault_RejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "history_size: 1\n")

	_, err := LoadOrDefault(path)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "history_size")
}
