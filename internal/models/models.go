// internal/models/models.go
package models

import "fmt"

// EndpointKind selects the polling strategy for a monitored endpoint.
type EndpointKind string

const (
	// KindMetricsSource marks an endpoint running the metrics agent; it is
	// polled for a full usage payload.
	KindMetricsSource EndpointKind = "metrics-source"
	// KindHTTPProbe marks a plain URL checked only for its HTTP status code.
	KindHTTPProbe EndpointKind = "http-probe"
)

// ParseEndpointKind validates a kind value received from the outside.
func ParseEndpointKind(s string) (EndpointKind, error) {
	switch k := EndpointKind(s); k {
	case KindMetricsSource, KindHTTPProbe:
		return k, nil
	default:
		return "", fmt.Errorf("unknown endpoint kind %q", s)
	}
}

// Endpoint is a single monitored target from the registry.
type Endpoint struct {
	Name    string       `json:"name"`    // unique key across the registry
	Address string       `json:"address"` // host:port or full URL for metrics sources, URL for probes
	Kind    EndpointKind `json:"kind"`
}

// AddEndpointRequest represents the form payload for registering an endpoint
type AddEndpointRequest struct {
	Name    string `form:"name" binding:"required" example:"db-host-1"`
	Address string `form:"address" binding:"required" example:"10.0.4.17:8081"`
	Kind    string `form:"kind" binding:"required" example:"metrics-source"`
}

// RemoveEndpointRequest represents the form payload for removing an endpoint
type RemoveEndpointRequest struct {
	Name string `form:"name" binding:"required" example:"db-host-1"`
}

// ErrorResponse represents a standard error message format
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenericSuccessResponse for simple success messages
type GenericSuccessResponse struct {
	Message string `json:"message"`
}
