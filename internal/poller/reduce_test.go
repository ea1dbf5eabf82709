// internal/poller/reduce_test.go
package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchpost/watchpost/internal/models"
)

const capturedAt = "2026-03-01 12:00:00"

func metricsEndpoint(name string) models.Endpoint {
	return models.Endpoint{Name: name, Address: "10.0.0.5:8081", Kind: models.KindMetricsSource}
}

func probeEndpoint(name string) models.Endpoint {
	return models.Endpoint{Name: name, Address: "https://" + name + ".example.com", Kind: models.KindHTTPProbe}
}

func healthyMetrics() *models.RawMetrics {
	return &models.RawMetrics{
		Disks: []models.DiskUsage{
			{MountPoint: "/", Total: 1000, Used: 420, UsedPercent: 42.0},
			{MountPoint: "/data", Total: 5000, Used: 1000, UsedPercent: 20.0},
		},
		CPUUsage: 31.5,
		CPUs: []models.CPUCore{
			{Name: "cpu0", Usage: 30.0, Frequency: 2400},
			{Name: "cpu1", Usage: 33.0, Frequency: 2400},
		},
		TotalMemory:   16000,
		UsedMemory:    4000,
		MemoryPercent: 25.0,
	}
}

func TestReduceMetrics_AllGreen(t *testing.T) {
	ep := metricsEndpoint("db-1")
	result := ReduceMetrics(ep, healthyMetrics(), capturedAt)

	assert.Equal(t, ep, result.Endpoint)
	assert.Equal(t, models.StatusGreen, result.DiskStatus)
	assert.Equal(t, models.StatusGreen, result.CPUStatus)
	assert.Equal(t, models.StatusGreen, result.MemoryStatus)
	assert.Equal(t, models.StatusGreen, result.Overall)
	assert.Equal(t, models.StatusGreen, result.Connectivity)
	assert.Equal(t, capturedAt, result.CapturedAt)

	require.NotNil(t, result.CPU)
	assert.Equal(t, 31.5, *result.CPU)
	require.NotNil(t, result.Memory)
	assert.Equal(t, models.StatusGreen, result.Memory.Status)
	require.Len(t, result.Disks, 2)
	assert.Equal(t, models.StatusGreen, result.Disks[0].Status)
	assert.Empty(t, result.Availability)
	assert.Nil(t, result.History)
}

func TestReduceMetrics_ThresholdIsStrict(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.RawMetrics)
		overall models.Status
	}{
		{
			"disk exactly 90 stays green",
			func(m *models.RawMetrics) { m.Disks[0].UsedPercent = 90.0 },
			models.StatusGreen,
		},
		{
			"disk just above 90 goes red",
			func(m *models.RawMetrics) { m.Disks[0].UsedPercent = 90.01 },
			models.StatusRed,
		},
		{
			"cpu exactly 90 stays green",
			func(m *models.RawMetrics) { m.CPUUsage = 90.0 },
			models.StatusGreen,
		},
		{
			"cpu above 90 goes red",
			func(m *models.RawMetrics) { m.CPUUsage = 97.2 },
			models.StatusRed,
		},
		{
			"memory exactly 90 stays green",
			func(m *models.RawMetrics) { m.MemoryPercent = 90.0 },
			models.StatusGreen,
		},
		{
			"memory above 90 goes red",
			func(m *models.RawMetrics) { m.MemoryPercent = 92.4 },
			models.StatusRed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := healthyMetrics()
			tc.mutate(raw)
			result := ReduceMetrics(metricsEndpoint("db-1"), raw, capturedAt)
			assert.Equal(t, tc.overall, result.Overall)
		})
	}
}

func TestReduceMetrics_SingleRedDiskFlipsCategoryAndOverall(t *testing.T) {
	raw := healthyMetrics()
	raw.Disks[1].UsedPercent = 95.0

	result := ReduceMetrics(metricsEndpoint("db-1"), raw, capturedAt)

	assert.Equal(t, models.StatusGreen, result.Disks[0].Status)
	assert.Equal(t, models.StatusRed, result.Disks[1].Status)
	assert.Equal(t, models.StatusRed, result.DiskStatus)
	assert.Equal(t, models.StatusGreen, result.CPUStatus)
	assert.Equal(t, models.StatusRed, result.Overall)
	assert.Equal(t, models.StatusGreen, result.Connectivity)
}

func TestReduceMetrics_CoreStatusesAreInformationalOnly(t *testing.T) {
	raw := healthyMetrics()
	raw.CPUs[1].Usage = 99.0 // one hot core, aggregate still low

	result := ReduceMetrics(metricsEndpoint("db-1"), raw, capturedAt)

	assert.Equal(t, models.StatusRed, result.Cores[1].Status)
	assert.Equal(t, models.StatusGreen, result.CPUStatus)
	assert.Equal(t, models.StatusGreen, result.Overall)
}

func TestReduceMetrics_NoDisksYieldsGreenDiskStatus(t *testing.T) {
	raw := healthyMetrics()
	raw.Disks = nil

	result := ReduceMetrics(metricsEndpoint("db-1"), raw, capturedAt)

	assert.Equal(t, models.StatusGreen, result.DiskStatus)
	assert.Equal(t, models.StatusGreen, result.Overall)
	assert.Empty(t, result.Disks)
}

func TestReduceAvailability(t *testing.T) {
	recs := []models.AvailabilityRecord{{StatusCode: 200, CapturedAt: capturedAt}}

	cases := []struct {
		name         string
		code         int
		reachable    bool
		availability models.Status
		connectivity models.Status
	}{
		{"ok", 200, true, models.StatusGreen, models.StatusGreen},
		{"not found", 404, true, models.StatusRed, models.StatusGreen},
		{"redirect counts as red", 301, true, models.StatusRed, models.StatusGreen},
		{"unreachable", 0, false, models.StatusRed, models.StatusRed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ep := probeEndpoint("shop")
			result := ReduceAvailability(ep, tc.code, tc.reachable, recs, capturedAt)

			assert.Equal(t, tc.availability, result.Availability)
			assert.Equal(t, tc.availability, result.Overall)
			assert.Equal(t, tc.connectivity, result.Connectivity)
			assert.Equal(t, recs, result.History)

			// Probe results never carry metric sections.
			assert.Nil(t, result.CPU)
			assert.Nil(t, result.Memory)
			assert.Empty(t, result.DiskStatus)
			assert.Empty(t, result.CPUStatus)
			assert.Empty(t, result.MemoryStatus)
		})
	}
}

func TestRedCategoriesAlertMessage(t *testing.T) {
	raw := healthyMetrics()
	raw.Disks[0].UsedPercent = 95.0
	raw.MemoryPercent = 99.0

	result := ReduceMetrics(metricsEndpoint("db-1"), raw, capturedAt)
	msg := redCategoriesAlert(result, capturedAt)

	assert.Equal(t,
		"Alert for db-1: statuses [disk_status, memory_status, overall_status] are red at 2026-03-01 12:00:00",
		msg)
}
