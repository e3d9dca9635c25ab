package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// RefreshInterval is the fixed period of the refresh timer.
const RefreshInterval = time.Second

// BreakpointMinimal is the width below which graphs are hidden.
const BreakpointMinimal = 40

// Options configure the dashboard model. A zero HistorySize or GraphHeight uses the default.
type Options struct {
	HistorySize int
	GraphHeight int
	Clamp       bool
	Logger      logger.Logger
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	source   Source
	history  *History
	renderer TrendRenderer
	labels   Labels
	last     Snapshot
	log      logger.Logger

	graphHeight int
	interval    time.Duration
	width       int
	height      int

	// tickID identifies the one armed tick; any other tick is dropped
	tickID  int
	polling bool
	polled  bool

	lastUpdate time.Time
	err        error
	quitting   bool
	showHelp   bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// tickMsg signals that the refresh interval has elapsed.
type tickMsg struct {
	id int
}

// snapshotMsg carries the result of one poll.
type snapshotMsg struct {
	snapshot Snapshot
	err      error
}

// NewModel creates a dashboard model that polls source. The first poll is
// issued by Init, so the model starts out with a poll in flight.
func NewModel(source Source, opts Options) Model {
	if opts.GraphHeight <= 0 {
		opts.GraphHeight = config.DefaultGraphHeight
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = MutedStyle

	h := help.New()
	h.Styles.ShortKey = LabelStyle.Bold(true)
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullKey = LabelStyle.Bold(true)
	h.Styles.FullDesc = MutedStyle

	return Model{
		source:      source,
		history:     NewHistory(opts.HistorySize),
		renderer:    TrendRenderer{Clamp: opts.Clamp},
		log:         opts.Logger,
		graphHeight: opts.GraphHeight,
		interval:    RefreshInterval,
		polling:     true,
		keys:        defaultKeys,
		help:        h,
		spinner:     sp,
	}
}

// Init triggers the first poll immediately and starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd(), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - FooterStyle.GetHorizontalFrameSize()

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		// Re-arm before polling so the period stays fixed however long a poll takes.
		m.tickID++
		next := m.tickCmd()
		if m.polling {
			m.log.Debug("tick %d skipped, previous poll still running", msg.id)
			return m, next
		}
		m.polling = true
		return m, tea.Batch(next, m.pollCmd())

	case snapshotMsg:
		m.polling = false
		if msg.err != nil {
			m.log.Error("poll failed: %v", msg.err)
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.applySnapshot(msg.snapshot)
		return m, nil

	case spinner.TickMsg:
		// The spinner only animates until the first snapshot lands.
		if m.polled {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// applySnapshot formats the labels and appends one sample to each trend.
// The GPU sample is read back from its label, so "Not detected" records 0.
func (m *Model) applySnapshot(s Snapshot) {
	m.labels = FormatLabels(s)
	m.last = s
	m.history.CPU.Append(s.CPUPercent)
	m.history.RAM.Append(s.RAMPercent)
	m.history.GPU.Append(ParseLoadLabel(m.labels.GPULoad))
	m.lastUpdate = s.Timestamp
	m.polled = true
}

// tickCmd arms the refresh timer for the current tick generation.
func (m Model) tickCmd() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// pollCmd runs one poll off the update loop.
func (m Model) pollCmd() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		snap, err := source.Poll(context.Background())
		return snapshotMsg{snapshot: snap, err: err}
	}
}

// Err returns the poll error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Labels returns the text currently shown for each metric.
func (m Model) Labels() Labels {
	return m.labels
}

// History returns the trend buffers.
func (m Model) History() *History {
	return m.history
}

// Minimal reports whether the terminal is too narrow for graphs.
func (m Model) Minimal() bool {
	return m.width > 0 && m.width < BreakpointMinimal
}
