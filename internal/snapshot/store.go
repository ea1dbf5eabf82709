// internal/snapshot/store.go
package snapshot

import (
	"sync/atomic"

	"github.com/watchpost/watchpost/internal/models"
)

// Store holds the latest complete poll-cycle result set. The poll engine is
// the only writer and swaps the whole snapshot in at the end of each cycle,
// so readers see either the previous complete set or the new one, never a
// mix.
type Store struct {
	current atomic.Value // stores []models.EndpointResult
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Publish replaces the current snapshot. Results must not be mutated after
// they are published.
func (s *Store) Publish(results []models.EndpointResult) {
	s.current.Store(results)
}

// Current returns the latest published results. Before the first cycle
// completes it returns an empty, non-nil slice so the API still serves a
// JSON array. The returned slice is the caller's to keep.
func (s *Store) Current() []models.EndpointResult {
	v := s.current.Load()
	if v == nil {
		return []models.EndpointResult{}
	}
	results := v.([]models.EndpointResult)
	out := make([]models.EndpointResult, len(results))
	copy(out, results)
	return out
}
