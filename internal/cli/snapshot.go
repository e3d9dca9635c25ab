package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"gopkg.in/yaml.v3"
)

// Snapshot output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// snapshotCommand takes one reading with the configured collector and prints it.
func snapshotCommand(ctx context.Context, cfgPath, format string, w io.Writer) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if err := validateFormat(format); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		if format == formatJSON {
			_ = WriteJSONFromError(w, err)
		}
		return err
	}

	collector := monitor.NewCollector(cfg, nil, logger.NewEnvLogger("[snapshot]"))
	return writeSnapshot(ctx, collector, format, w)
}

// writeSnapshot polls src once and writes the result in format.
func writeSnapshot(ctx context.Context, src monitor.Source, format string, w io.Writer) error {
	snap, err := src.Poll(ctx)
	if err != nil {
		if format == formatJSON {
			_ = WriteJSONFromError(w, err)
		}
		return err
	}

	switch format {
	case formatJSON:
		return WriteJSONSuccess(w, snap)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return errors.WrapWithCode(err, errors.ErrExec, "Couldn't encode snapshot as YAML", "")
		}
		return enc.Close()
	default:
		return writeSnapshotText(w, snap)
	}
}

// writeSnapshotText prints the dashboard labels, one per line.
func writeSnapshotText(w io.Writer, snap monitor.Snapshot) error {
	l := monitor.FormatLabels(snap)
	for _, line := range []string{l.CPU, l.Memory, l.Storage, l.GPUTemp, l.GPULoad, l.GPUMemory} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a supported output format", format),
			"Use --format text, json or yaml")
	}
}
