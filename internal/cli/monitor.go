package cli

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"golang.org/x/term"
)

// debugLogFile receives log output while the dashboard owns the terminal.
const debugLogFile = "sysmon-debug.log"

// monitorCommand starts the TUI monitoring dashboard.
func monitorCommand(cfgPath string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrExec,
			"The dashboard needs an interactive terminal",
			"Use 'sysmon snapshot' when piping or redirecting output")
	}

	closeLog, err := redirectLog()
	if err != nil {
		return err
	}
	defer closeLog()

	monLog := logger.NewEnvLogger("[monitor]")
	collector := monitor.NewCollector(cfg, nil, monLog)
	model := monitor.NewModel(collector, monitor.Options{
		HistorySize: cfg.HistorySize,
		GraphHeight: cfg.GraphHeight,
		Clamp:       cfg.Clamp,
		Logger:      monLog,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"The dashboard stopped unexpectedly",
			"Set SYSMON_DEBUG=1 and check "+debugLogFile+" for details")
	}

	// A failed poll quits the program; surface why
	if m, ok := final.(monitor.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// redirectLog keeps log output off the screen while the TUI is running.
// With SYSMON_DEBUG set it goes to debugLogFile, otherwise it is dropped.
func redirectLog() (func(), error) {
	if !logger.DebugEnabled() {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := tea.LogToFile(debugLogFile, "sysmon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open "+debugLogFile,
			"Run sysmon from a writable directory or unset SYSMON_DEBUG")
	}
	return func() {
		_ = f.Close()
		log.SetOutput(os.Stderr)
	}, nil
}
