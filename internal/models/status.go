// internal/models/status.go
package models

// Status is the two-state health classification used across the dashboard.
// It serializes as "green" or "red", which the dashboard page maps directly
// to its indicator colors.
type Status string

const (
	StatusGreen Status = "green"
	StatusRed   Status = "red"
)

// StatusFromExceeded maps a threshold breach to a status.
func StatusFromExceeded(exceeded bool) Status {
	if exceeded {
		return StatusRed
	}
	return StatusGreen
}

// IsRed reports whether s is the red state.
func (s Status) IsRed() bool { return s == StatusRed }

// ReduceStatuses collapses category statuses into one: red if any input is
// red, green otherwise (also green for an empty input).
func ReduceStatuses(statuses ...Status) Status {
	for _, s := range statuses {
		if s.IsRed() {
			return StatusRed
		}
	}
	return StatusGreen
}
