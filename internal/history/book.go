// internal/history/book.go
package history

import (
	"sync"

	"github.com/watchpost/watchpost/internal/models"
)

// Book keeps one availability ring per endpoint name. Rings live for the
// lifetime of the process and survive poll cycles in which the endpoint
// fails or returns nothing, so the dashboard always shows the last few
// observations.
type Book struct {
	mu       sync.RWMutex
	rings    map[string]*Ring
	capacity int
}

// NewBook creates an empty Book whose rings hold capacity records each.
func NewBook(capacity int) *Book {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Book{
		rings:    make(map[string]*Ring),
		capacity: capacity,
	}
}

// Append records one observation for the named endpoint, creating its ring
// on first use.
func (b *Book) Append(name string, rec models.AvailabilityRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.rings[name]
	if !ok {
		r = NewRing(b.capacity)
		b.rings[name] = r
	}
	r.Push(rec)
}

// Records returns the named endpoint's observations in chronological order,
// or nil when nothing has been recorded yet.
func (b *Book) Records(name string) []models.AvailabilityRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.rings[name]
	if !ok {
		return nil
	}
	return r.Records()
}
