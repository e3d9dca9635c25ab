package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sysmon/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd runs the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live CPU, RAM, disk and GPU dashboard for this machine",
	Long: `sysmon shows CPU, memory, storage and GPU usage for the local machine,
refreshed every second, with scrolling graphs of recent CPU, RAM and GPU load.

GPU figures come from nvidia-smi. Without it every GPU field reads
"Not detected" and the rest of the dashboard works as usual.

Configuration is optional. sysmon looks for .sysmon.yaml in the current
directory, then ~/.config/sysmon/config.yaml. Any key can be overridden
with a SYSMON_ environment variable, e.g. SYSMON_DISK_PATH=/home.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .sysmon.yaml or ~/.config/sysmon/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprintf(os.Stderr, "'%s' isn't a sysmon command.\n", name)
			if suggestions := suggestCommands(name); len(suggestions) > 0 {
				fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", util.JoinOrDefault(suggestions, ""))
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprintln(os.Stderr, "Run 'sysmon --help' to see what's available.")
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted name out of cobra's
// `unknown command "foo" for "sysmon"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// suggestCommands returns visible subcommands whose names are close to name.
func suggestCommands(name string) []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return util.SuggestSimilar(name, names, 3)
}
