// internal/models/health_models.go
package models

import "time"

// HealthResponse represents basic health information about the collector
type HealthResponse struct {
	Status    string    `json:"status"`            // "healthy" or other status indicators
	Uptime    string    `json:"uptime"`            // Human-readable uptime
	StartTime time.Time `json:"startTime"`         // When the collector started
	Version   string    `json:"version,omitempty"` // Collector version
}
