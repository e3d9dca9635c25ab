package monitor

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// HistoryBuffer is a fixed-size circular buffer of float64 samples.
//
// The buffer starts full of zeros and never grows or shrinks: Append
// overwrites the oldest sample, so Contents always returns Cap samples.
// It is owned by a single goroutine (the Bubble Tea loop) and
// is not safe for concurrent use.
type HistoryBuffer struct {
	data []float64
	head int // next write position, which is also the oldest sample
}

// NewHistoryBuffer creates a buffer holding size zero samples.
// A non-positive size falls back to DefaultHistorySize.
func NewHistoryBuffer(size int) *HistoryBuffer {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &HistoryBuffer{data: make([]float64, size)}
}

// Append drops the oldest sample and adds value as the newest.
func (b *HistoryBuffer) Append(value float64) {
	b.data[b.head] = value
	b.head = (b.head + 1) % len(b.data)
}

// Contents returns a copy of the samples in chronological order (oldest first).
func (b *HistoryBuffer) Contents() []float64 {
	n := len(b.data)
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = b.data[(b.head+i)%n]
	}
	return result
}

// Cap returns the fixed number of samples the buffer holds.
func (b *HistoryBuffer) Cap() int {
	return len(b.data)
}

// Last returns the most recently appended sample.
func (b *HistoryBuffer) Last() float64 {
	n := len(b.data)
	return b.data[(b.head-1+n)%n]
}

// History groups the three trend buffers shown on the panel.
type History struct {
	CPU *HistoryBuffer
	RAM *HistoryBuffer
	GPU *HistoryBuffer
}

// NewHistory creates CPU, RAM and GPU buffers of the same size.
func NewHistory(size int) *History {
	return &History{
		CPU: NewHistoryBuffer(size),
		RAM: NewHistoryBuffer(size),
		GPU: NewHistoryBuffer(size),
	}
}
