// Package monitor implements a real-time TUI dashboard for local system metrics.
//
// The dashboard shows CPU, RAM, disk and GPU statistics for the machine it
// runs on, refreshed once per second, with scrolling line graphs for CPU,
// RAM and GPU load history.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: the display panel; owns the history buffers and label text
//   - Update: applies keystrokes, ticks and new snapshots
//   - View: renders labels and trend graphs to a string
//
// # Key Components
//
//	Collector      - Polls CPU/RAM/disk through gopsutil and the GPU through GPUQuerier
//	GPUQuerier     - Runs nvidia-smi three times and returns a GPUReading
//	HistoryBuffer  - Fixed-size ring buffer of recent samples, always full
//	TrendRenderer  - Maps a buffer onto a braille dot canvas as a polyline
//	Model          - The Bubble Tea model that drives the refresh cycle
//
// # Message Flow
//
//  1. Init issues the first poll and arms the first tickMsg
//  2. snapshotMsg arrives, labels are formatted and samples appended
//  3. Every RefreshInterval a tickMsg arms the next tick, then starts a poll
//
// The timer runs on its own schedule, so poll time never stretches the
// period. A tick that arrives while a poll is still running skips its
// poll, so polls never overlap; a slow GPU tool only delays what is shown.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Refresh now
//	?           - Toggle help
package monitor
