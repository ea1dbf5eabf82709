// internal/agent/collector.go
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/watchpost/watchpost/internal/models"
)

// defaultSampleInterval is the window over which CPU usage is measured
// for a single collection. It must stay well below the collector's
// probe timeout so a scrape never starves the poll cycle.
const defaultSampleInterval = 500 * time.Millisecond

// Sampler produces one point-in-time reading of the host's resources.
type Sampler interface {
	Collect(ctx context.Context) (*models.RawMetrics, error)
}

// Collector gathers disk, CPU and memory usage from the local host.
type Collector struct {
	sampleInterval time.Duration
}

// NewCollector returns a Collector sampling CPU usage over the given
// window. Non-positive intervals fall back to the default.
func NewCollector(sampleInterval time.Duration) *Collector {
	if sampleInterval <= 0 {
		sampleInterval = defaultSampleInterval
	}
	return &Collector{sampleInterval: sampleInterval}
}

// Collect samples the host and assembles the usage payload. Mounts that
// cannot be statted are skipped; a failure of a whole subsystem aborts
// the collection.
func (c *Collector) Collect(ctx context.Context) (*models.RawMetrics, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list disk partitions: %w", err)
	}
	disks := make([]models.DiskUsage, 0, len(partitions))
	for _, part := range partitions {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			log.Debugf("Agent: skipping mount '%s': %v", part.Mountpoint, err)
			continue
		}
		disks = append(disks, models.DiskUsage{
			MountPoint:  part.Mountpoint,
			Total:       usage.Total,
			Used:        usage.Used,
			UsedPercent: usedPercent(usage.Used, usage.Total),
		})
	}

	perCore, err := cpu.PercentWithContext(ctx, c.sampleInterval, true)
	if err != nil {
		return nil, fmt.Errorf("failed to sample CPU usage: %w", err)
	}
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		// Frequencies are cosmetic. Serve usage without them.
		log.Debugf("Agent: CPU info unavailable: %v", err)
		infos = nil
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory usage: %w", err)
	}

	return &models.RawMetrics{
		Disks:         disks,
		CPUUsage:      aggregateUsage(perCore),
		CPUs:          buildCores(perCore, infos),
		TotalMemory:   vm.Total,
		UsedMemory:    vm.Used,
		MemoryPercent: usedPercent(vm.Used, vm.Total),
	}, nil
}

// usedPercent computes used/total as a percentage, treating an empty
// total as zero usage.
func usedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}

// aggregateUsage reduces per-core usage samples to a single host-wide
// figure.
func aggregateUsage(perCore []float64) float64 {
	if len(perCore) == 0 {
		return 0
	}
	var sum float64
	for _, usage := range perCore {
		sum += usage
	}
	return sum / float64(len(perCore))
}

// buildCores pairs per-core usage samples with the frequencies reported
// for each logical CPU. Info rows can be shorter than the sample list
// on some platforms, in which case the frequency is left at zero.
func buildCores(perCore []float64, infos []cpu.InfoStat) []models.CPUCore {
	cores := make([]models.CPUCore, 0, len(perCore))
	for i, usage := range perCore {
		var frequency uint64
		if i < len(infos) {
			frequency = uint64(infos[i].Mhz)
		}
		cores = append(cores, models.CPUCore{
			Name:      fmt.Sprintf("cpu%d", i),
			Usage:     usage,
			Frequency: frequency,
		})
	}
	return cores
}
