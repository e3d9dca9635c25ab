package monitor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotDetected is shown in place of every GPU value when no GPU reading is available.
const NotDetected = "Not detected"

// Label prefixes, shared by the formatters and ParseLoadLabel.
const (
	cpuPrefix       = "CPU Usage: "
	memoryPrefix    = "Memory: "
	storagePrefix   = "Storage: "
	gpuTempPrefix   = "GPU Temp: "
	gpuLoadPrefix   = "GPU Load: "
	gpuMemoryPrefix = "GPU Memory: "
)

// Labels is the text shown for one snapshot.
type Labels struct {
	CPU       string
	Memory    string
	Storage   string
	GPUTemp   string
	GPULoad   string
	GPUMemory string
}

// FormatLabels renders every label for a snapshot.
func FormatLabels(s Snapshot) Labels {
	l := Labels{
		CPU:     FormatCPU(s.CPUPercent),
		Memory:  FormatMemory(s.RAMPercent, s.RAMUsedBytes, s.RAMTotalBytes),
		Storage: FormatStorage(s.DiskPercent, s.DiskUsedBytes, s.DiskTotalBytes),
	}

	if !s.GPU.Available {
		l.GPUTemp = gpuTempPrefix + NotDetected
		l.GPULoad = gpuLoadPrefix + NotDetected
		l.GPUMemory = gpuMemoryPrefix + NotDetected
		return l
	}

	l.GPUTemp = fmt.Sprintf("%s%d°C", gpuTempPrefix, s.GPU.TempCelsius)
	l.GPULoad = fmt.Sprintf("%s%d%%", gpuLoadPrefix, s.GPU.LoadPercent)
	l.GPUMemory = FormatGPUMemory(s.GPU.MemUsedMB, s.GPU.MemTotalMB)
	return l
}

// FormatCPU renders e.g. "CPU Usage: 42.5%".
func FormatCPU(percent float64) string {
	return fmt.Sprintf("%s%.1f%%", cpuPrefix, percent)
}

// FormatMemory renders e.g. "Memory: 67.0% (8.0/16.0 GB)".
func FormatMemory(percent float64, used, total uint64) string {
	return fmt.Sprintf("%s%.1f%% (%.1f/%.1f GB)", memoryPrefix, percent, toGiB(used), toGiB(total))
}

// FormatStorage renders e.g. "Storage: 55.2% (110.0/200.0 GB)".
func FormatStorage(percent float64, used, total uint64) string {
	return fmt.Sprintf("%s%.1f%% (%.1f/%.1f GB)", storagePrefix, percent, toGiB(used), toGiB(total))
}

// FormatGPUMemory renders e.g. "GPU Memory: 2048/8192 MB (25.0%)".
// The percentage is left out when the total is unknown.
func FormatGPUMemory(usedMB, totalMB int) string {
	if totalMB <= 0 {
		return fmt.Sprintf("%s%d/%d MB", gpuMemoryPrefix, usedMB, totalMB)
	}
	percent := float64(usedMB) / float64(totalMB) * 100
	return fmt.Sprintf("%s%d/%d MB (%.1f%%)", gpuMemoryPrefix, usedMB, totalMB, percent)
}

// ParseLoadLabel reads the number back out of a GPU load label such as
// "GPU Load: 45%". Anything that is not a percentage, including the
// "Not detected" label, yields 0.
func ParseLoadLabel(label string) float64 {
	s := strings.TrimSpace(strings.TrimPrefix(label, gpuLoadPrefix))
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
