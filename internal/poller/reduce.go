// internal/poller/reduce.go
package poller

import (
	"net/http"

	"github.com/watchpost/watchpost/internal/models"
)

// redThreshold is the usage percentage above which a category turns red.
// The comparison is strict, so exactly 90.0 is still green.
const redThreshold = 90.0

// ReduceMetrics turns a usage payload into the endpoint's result for this
// cycle. It is pure: no clocks, no I/O, no alerting.
func ReduceMetrics(ep models.Endpoint, raw *models.RawMetrics, capturedAt string) models.EndpointResult {
	disks := make([]models.DiskReport, len(raw.Disks))
	diskStatus := models.StatusGreen
	for i, d := range raw.Disks {
		st := models.StatusFromExceeded(d.UsedPercent > redThreshold)
		if st.IsRed() {
			diskStatus = models.StatusRed
		}
		disks[i] = models.DiskReport{
			MountPoint:  d.MountPoint,
			Total:       d.Total,
			Used:        d.Used,
			UsedPercent: d.UsedPercent,
			Status:      st,
		}
	}

	// Per-core statuses are shown on the dashboard but only the aggregate
	// figure decides cpu_status.
	cores := make([]models.CoreReport, len(raw.CPUs))
	for i, c := range raw.CPUs {
		cores[i] = models.CoreReport{
			Name:      c.Name,
			Usage:     c.Usage,
			Frequency: c.Frequency,
			Status:    models.StatusFromExceeded(c.Usage > redThreshold),
		}
	}

	cpuStatus := models.StatusFromExceeded(raw.CPUUsage > redThreshold)
	memStatus := models.StatusFromExceeded(raw.MemoryPercent > redThreshold)

	cpu := raw.CPUUsage
	return models.EndpointResult{
		Endpoint: ep,
		Disks:    disks,
		CPU:      &cpu,
		Cores:    cores,
		Memory: &models.MemoryReport{
			TotalMemory:   raw.TotalMemory,
			UsedMemory:    raw.UsedMemory,
			MemoryPercent: raw.MemoryPercent,
			Status:        memStatus,
		},
		DiskStatus:   diskStatus,
		CPUStatus:    cpuStatus,
		MemoryStatus: memStatus,
		Overall:      models.ReduceStatuses(diskStatus, cpuStatus, memStatus),
		Connectivity: models.StatusGreen,
		CapturedAt:   capturedAt,
	}
}

// ReduceAvailability turns one probe observation plus the endpoint's history
// into its result for this cycle. Pure, like ReduceMetrics.
func ReduceAvailability(ep models.Endpoint, code int, reachable bool, records []models.AvailabilityRecord, capturedAt string) models.EndpointResult {
	status := AvailabilityStatus(code)
	connectivity := models.StatusGreen
	if !reachable {
		connectivity = models.StatusRed
	}
	return models.EndpointResult{
		Endpoint:     ep,
		Availability: status,
		Overall:      status,
		Connectivity: connectivity,
		CapturedAt:   capturedAt,
		History:      records,
	}
}

// AvailabilityStatus classifies a probe's status code: green for exactly
// 200, red for everything else including redirects and code 0.
func AvailabilityStatus(code int) models.Status {
	return models.StatusFromExceeded(code != http.StatusOK)
}

// metricsFailure is the result of a metrics poll that produced no payload.
// All categories go red and the metric sections stay absent; connectivity
// tells apart unreachable (red) from reachable-but-broken (green).
func metricsFailure(ep models.Endpoint, connectivity models.Status, capturedAt string) models.EndpointResult {
	return models.EndpointResult{
		Endpoint:     ep,
		DiskStatus:   models.StatusRed,
		CPUStatus:    models.StatusRed,
		MemoryStatus: models.StatusRed,
		Overall:      models.StatusRed,
		Connectivity: connectivity,
		CapturedAt:   capturedAt,
	}
}
