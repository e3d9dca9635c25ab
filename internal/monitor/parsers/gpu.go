// Package parsers turns raw nvidia-smi CSV output into numbers.
package parsers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotAvailable is returned when nvidia-smi prints nothing usable for a
// field, such as an empty line or "[N/A]".
var ErrNotAvailable = errors.New("value not available")

// ParseNvidiaSMIValue parses a single-field query such as
// nvidia-smi --query-gpu=temperature.gpu --format=csv,noheader,nounits.
//
// Only the first non-empty line is considered, so hosts with several GPUs
// report the first device. Fractional values are rounded to the nearest integer.
func ParseNvidiaSMIValue(output string) (int, error) {
	line := firstLine(output)
	if isMissing(line) {
		return 0, ErrNotAvailable
	}

	// some drivers pad with a trailing comma
	line = strings.TrimSpace(strings.TrimSuffix(line, ","))
	return parseNumber(line)
}

// ParseNvidiaSMIMemory parses a memory.used,memory.total query. Both values are in MiB.
// Example line: "2048, 8192"
func ParseNvidiaSMIMemory(output string) (used, total int, err error) {
	line := firstLine(output)
	if isMissing(line) {
		return 0, 0, ErrNotAvailable
	}

	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("nvidia-smi memory output has insufficient fields: expected 2, got %d", len(fields))
	}

	usedStr := strings.TrimSpace(fields[0])
	totalStr := strings.TrimSpace(fields[1])
	if isMissing(usedStr) || isMissing(totalStr) {
		return 0, 0, ErrNotAvailable
	}

	used, err = parseNumber(usedStr)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse GPU memory used '%s': %w", usedStr, err)
	}
	total, err = parseNumber(totalStr)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse GPU memory total '%s': %w", totalStr, err)
	}

	return used, total, nil
}

func firstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func isMissing(s string) bool {
	return s == "" || strings.EqualFold(s, "[N/A]") || strings.EqualFold(s, "N/A")
}

func parseNumber(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	return int(math.Round(f)), nil
}
