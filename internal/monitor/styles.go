package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette - phosphor green terminal
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#000000") // Black screen
	ColorSurfaceBg = lipgloss.Color("#001100") // Label surface
	ColorTitleBg   = lipgloss.Color("#002200") // Section title strip
	ColorBorder    = lipgloss.Color("#00FF00") // Panel border

	// Semantic colors for metrics
	ColorHealthy  = lipgloss.Color("#00FF00") // Phosphor green
	ColorWarning  = lipgloss.Color("#FFAA00") // Amber
	ColorCritical = lipgloss.Color("#FF0055") // Alarm red

	// Text colors
	ColorTextPrimary = lipgloss.Color("#00FF00") // Phosphor green
	ColorTextMuted   = lipgloss.Color("#007700") // Dim green

	// Graph colors
	ColorLine = lipgloss.Color("#00FF00") // Trend line
)

// Thresholds for metric severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Base styles for the dashboard
var (
	DashboardStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorDarkBg)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorTitleBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Panel wraps each metric section
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorTitleBg).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)
)

// SectionTitle formats a section name as a bracketed tag, e.g. "[ CPU_METRICS ]".
func SectionTitle(name string) string {
	return "[ " + strings.ToUpper(name) + "_METRICS ]"
}

// MetricColor returns the appropriate color for a percentage-based metric.
// Uses threshold-based coloring: green < 70%, amber 70-90%, red > 90%.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the appropriate foreground color for the metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}
