package cli

import (
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	snapshotFormatFlag string
)

// monitorCmd starts the TUI dashboard. It is also what bare `sysmon` runs.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Real-time system metrics dashboard",
	Long: `Start an interactive TUI dashboard showing CPU, RAM, storage and GPU
metrics for this machine, refreshed once per second.

CPU, RAM and GPU load are also drawn as scrolling line graphs covering
the last 60 samples (history_size in config).

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh now
  ?           Show help

Examples:
  sysmon
  sysmon monitor --config ./sysmon.yaml
  SYSMON_GPU_ENABLED=false sysmon`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cfgFile)
	},
}

// snapshotCmd prints one poll and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one set of metrics and exit",
	Long: `Take a single reading of every metric and print it.

Text output uses the same labels as the dashboard. JSON output wraps the
reading in a {"success", "data", "error"} envelope for scripts.

Examples:
  sysmon snapshot
  sysmon snapshot --format json | jq .data.cpu_percent
  sysmon snapshot --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.Context(), cfgFile, snapshotFormatFlag, cmd.OutOrStdout())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysmon.

Examples:
  # Bash
  sysmon completion bash > /etc/bash_completion.d/sysmon

  # Zsh
  sysmon completion zsh > "${fpath[1]}/_sysmon"

  # Fish
  sysmon completion fish > ~/.config/fish/completions/sysmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotFormatFlag, "format", "f", formatText, "output format: text, json or yaml")

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(completionCmd)
}
