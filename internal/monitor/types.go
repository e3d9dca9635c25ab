package monitor

import "time"

// bytesPerGiB converts byte counts to the GB figures shown on the panel.
const bytesPerGiB = 1 << 30

// Snapshot is one poll's full set of metric values. It is produced fresh on
// every poll and consumed by the panel within the same refresh cycle.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`

	RAMPercent    float64 `json:"ram_percent" yaml:"ram_percent"`
	RAMUsedBytes  uint64  `json:"ram_used_bytes" yaml:"ram_used_bytes"`
	RAMTotalBytes uint64  `json:"ram_total_bytes" yaml:"ram_total_bytes"`

	DiskPercent    float64 `json:"disk_percent" yaml:"disk_percent"`
	DiskUsedBytes  uint64  `json:"disk_used_bytes" yaml:"disk_used_bytes"`
	DiskTotalBytes uint64  `json:"disk_total_bytes" yaml:"disk_total_bytes"`

	GPU GPUReading `json:"gpu" yaml:"gpu"`
}

// GPUReading is the result of a GPU query. When Available is false every
// other field is zero and Reason says why the tool gave nothing usable.
type GPUReading struct {
	Available   bool   `json:"available" yaml:"available"`
	TempCelsius int    `json:"temp_celsius,omitempty" yaml:"temp_celsius,omitempty"`
	LoadPercent int    `json:"load_percent,omitempty" yaml:"load_percent,omitempty"`
	MemUsedMB   int    `json:"mem_used_mb,omitempty" yaml:"mem_used_mb,omitempty"`
	MemTotalMB  int    `json:"mem_total_mb,omitempty" yaml:"mem_total_mb,omitempty"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// GPUUnavailable returns a reading that marks every GPU field as not detected.
func GPUUnavailable(reason string) GPUReading {
	return GPUReading{Reason: reason}
}

// toGiB converts a byte count to GiB.
func toGiB(b uint64) float64 {
	return float64(b) / bytesPerGiB
}
