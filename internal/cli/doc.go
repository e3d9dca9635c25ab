// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, each delegating to a
// small function that loads config and hands off to internal/monitor.
//
// # Command Structure
//
// The root command is "sysmon". Run bare, it starts the dashboard:
//
//	sysmon                       - Real-time metrics dashboard (same as monitor)
//	sysmon monitor               - Real-time metrics dashboard
//	sysmon snapshot [--format]   - Print one reading as text, json or yaml
//	sysmon version [--short]     - Print build information
//	sysmon completion <shell>    - Generate shell completion
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Command-specific flags are defined in each
// command's init function.
//
// # Error Handling
//
// Commands return structured errors from internal/errors. Execute prints
// them to stderr and exits 1. With --format json, snapshot also writes the
// error as a JSON envelope on stdout.
package cli
