// internal/poller/alerts.go
package poller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/watchpost/watchpost/internal/models"
)

// alert hands a message to the notifier, if one is configured. Delivery is
// best effort: a failure is logged and the cycle's result is unaffected.
// Every red cycle alerts again; there is no deduplication.
func (s *Scheduler) alert(ctx context.Context, message string) {
	if s.opts.Notifier == nil {
		return
	}
	if err := s.opts.Notifier.Notify(ctx, message); err != nil {
		log.Errorf("Poller: alert dispatch failed: %v", err)
	}
}

// redCategoriesAlert lists the status keys that went red for a
// metrics-source endpoint, one message per endpoint per cycle.
func redCategoriesAlert(result models.EndpointResult, capturedAt string) string {
	keys := make([]string, 0, 4)
	if result.DiskStatus.IsRed() {
		keys = append(keys, "disk_status")
	}
	if result.CPUStatus.IsRed() {
		keys = append(keys, "cpu_status")
	}
	if result.MemoryStatus.IsRed() {
		keys = append(keys, "memory_status")
	}
	if result.Overall.IsRed() {
		keys = append(keys, "overall_status")
	}
	return fmt.Sprintf("Alert for %s: statuses [%s] are red at %s",
		result.Endpoint.Name, strings.Join(keys, ", "), capturedAt)
}

func payloadAlert(name, capturedAt string, err error) string {
	return fmt.Sprintf("Alert for %s: Failed to parse JSON response at %s. Error: %v", name, capturedAt, err)
}

func connectivityAlert(name, capturedAt string, err error) string {
	return fmt.Sprintf("Connectivity error for %s: Unable to reach at %s. Error: %v", name, capturedAt, err)
}

func probeStatusAlert(name string, code int, capturedAt string) string {
	return fmt.Sprintf("Alert for %s: endpoint returned status %d at %s", name, code, capturedAt)
}
