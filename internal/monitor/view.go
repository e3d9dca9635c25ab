package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultViewWidth is used before the first WindowSizeMsg arrives.
const defaultViewWidth = 60

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if !m.polled {
		b.WriteString(MutedStyle.Render(m.spinner.View() + " Polling system metrics..."))
	} else if m.Minimal() {
		b.WriteString(m.renderMinimal())
	} else {
		b.WriteString(m.renderSections())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return DashboardStyle.Render(b.String())
}

// renderHeader renders the title bar with the time of the last update.
func (m Model) renderHeader() string {
	title := "SYS_MONITOR"
	if !m.lastUpdate.IsZero() {
		title += " :: " + m.lastUpdate.Format("15:04:05")
	}
	return HeaderStyle.Render(title)
}

// renderSections renders one bordered panel per metric group.
func (m Model) renderSections() string {
	inner := m.contentWidth()

	cpu := m.renderSection("cpu", []string{m.labels.CPU}, m.history.CPU.Contents(), inner)
	ram := m.renderSection("ram", []string{m.labels.Memory}, m.history.RAM.Contents(), inner)
	disk := m.renderDiskSection(inner)
	gpu := m.renderSection("gpu",
		[]string{m.labels.GPUTemp, m.labels.GPULoad, m.labels.GPUMemory},
		m.history.GPU.Contents(), inner)

	return lipgloss.JoinVertical(lipgloss.Left, cpu, ram, disk, gpu)
}

// renderSection renders a title, its value labels and a trend graph.
func (m Model) renderSection(name string, labels []string, samples []float64, inner int) string {
	lines := []string{TitleStyle.Render(SectionTitle(name))}
	for _, l := range labels {
		lines = append(lines, LabelStyle.Render(l))
	}
	lines = append(lines, m.renderer.Render(samples, inner, m.graphHeight))

	return panel(inner).Render(strings.Join(lines, "\n"))
}

// renderDiskSection shows storage as a usage bar; disk has no trend history.
func (m Model) renderDiskSection(inner int) string {
	lines := []string{
		TitleStyle.Render(SectionTitle("disk")),
		LabelStyle.Render(m.labels.Storage),
		RenderUsageBar(inner, m.last.DiskPercent),
	}
	return panel(inner).Render(strings.Join(lines, "\n"))
}

// renderMinimal renders labels only, for narrow terminals.
func (m Model) renderMinimal() string {
	labels := []string{
		m.labels.CPU,
		m.labels.Memory,
		m.labels.Storage,
		m.labels.GPUTemp,
		m.labels.GPULoad,
		m.labels.GPUMemory,
	}
	lines := make([]string, len(labels))
	for i, l := range labels {
		lines[i] = LabelStyle.Render(l)
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// contentWidth is the width available inside a panel's border and padding.
func (m Model) contentWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultViewWidth
	}
	inner := width - PanelStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return inner
}

// panel returns the panel style sized so its content area is inner columns.
// lipgloss widths include padding but not the border.
func panel(inner int) lipgloss.Style {
	return PanelStyle.Width(inner + PanelStyle.GetHorizontalPadding())
}
