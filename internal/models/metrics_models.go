// internal/models/metrics_models.go
package models

// RawMetrics is the usage payload a metrics-source endpoint serves on
// GET /usage. Field names are the wire contract shared with the agent.
type RawMetrics struct {
	Disks         []DiskUsage `json:"disk_usage"`
	CPUUsage      float64     `json:"cpu_usage"` // aggregate across all cores, percent
	CPUs          []CPUCore   `json:"cpus"`
	TotalMemory   uint64      `json:"total_memory"` // bytes
	UsedMemory    uint64      `json:"used_memory"`  // bytes
	MemoryPercent float64     `json:"memory_percent"`
}

// DiskUsage describes one mounted filesystem as reported by the agent.
type DiskUsage struct {
	MountPoint  string  `json:"mount_point"`
	Total       uint64  `json:"total"` // bytes
	Used        uint64  `json:"used"`  // bytes
	UsedPercent float64 `json:"used_percent"`
}

// CPUCore describes a single core as reported by the agent.
type CPUCore struct {
	Name      string  `json:"name"`
	Usage     float64 `json:"cpu_usage"` // percent
	Frequency uint64  `json:"frequency"` // MHz
}
