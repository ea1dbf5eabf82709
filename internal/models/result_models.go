// internal/models/result_models.go
package models

// DiskReport is a DiskUsage entry with its computed status attached.
type DiskReport struct {
	MountPoint  string  `json:"mount_point"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
	Status      Status  `json:"status"`
}

// CoreReport is a CPUCore entry with its computed status attached. Per-core
// statuses are informational only and never feed the category or overall
// reduction.
type CoreReport struct {
	Name      string  `json:"name"`
	Usage     float64 `json:"cpu_usage"`
	Frequency uint64  `json:"frequency"`
	Status    Status  `json:"status"`
}

// MemoryReport carries the memory totals with their computed status.
type MemoryReport struct {
	TotalMemory   uint64  `json:"total_memory"`
	UsedMemory    uint64  `json:"used_memory"`
	MemoryPercent float64 `json:"memory_percent"`
	Status        Status  `json:"status"`
}

// AvailabilityRecord is one http-probe observation. A status code of 0 means
// the probe could not reach the endpoint at all.
type AvailabilityRecord struct {
	StatusCode int    `json:"status_code"`
	CapturedAt string `json:"captured_at"`
}

// EndpointResult is the per-endpoint outcome of one poll cycle. Metric
// sections are present only for reachable metrics-source endpoints;
// status_history and availability_status only for http-probe endpoints.
type EndpointResult struct {
	Endpoint `json:"endpoint"`

	Disks  []DiskReport  `json:"disk_usage,omitempty"`
	CPU    *float64      `json:"cpu_usage,omitempty"` // aggregate percent
	Cores  []CoreReport  `json:"cpus,omitempty"`
	Memory *MemoryReport `json:"memory_usage,omitempty"`

	DiskStatus   Status `json:"disk_status,omitempty"`   // metrics-source only
	CPUStatus    Status `json:"cpu_status,omitempty"`    // metrics-source only
	MemoryStatus Status `json:"memory_status,omitempty"` // metrics-source only

	// Availability is the collapsed status of an http-probe endpoint:
	// green exactly when the last response code was 200.
	Availability Status `json:"availability_status,omitempty"`

	Overall      Status `json:"overall_status"`
	Connectivity Status `json:"connectivity"`
	CapturedAt   string `json:"captured_at"`

	History []AvailabilityRecord `json:"status_history,omitempty"`
}
