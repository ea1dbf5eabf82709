// internal/history/ring.go
package history

import "github.com/watchpost/watchpost/internal/models"

const defaultCapacity = 3

// Ring is a fixed-size ring buffer of availability records. When the buffer
// is full, new pushes overwrite the oldest entry.
type Ring struct {
	buf  []models.AvailabilityRecord
	head int // index of the next write position
	size int // number of valid entries
}

// NewRing creates a Ring with the given capacity. If capacity <= 0, the
// default of 3 is used.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Ring{
		buf: make([]models.AvailabilityRecord, capacity),
	}
}

// Push appends a record, overwriting the oldest if full.
func (r *Ring) Push(rec models.AvailabilityRecord) {
	r.buf[r.head] = rec
	r.head = (r.head + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// Len returns the number of valid entries.
func (r *Ring) Len() int {
	return r.size
}

// Records returns the stored records in chronological order (oldest first).
func (r *Ring) Records() []models.AvailabilityRecord {
	out := make([]models.AvailabilityRecord, r.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (r.head - r.size + len(r.buf)) % len(r.buf)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}
