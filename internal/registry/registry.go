// internal/registry/registry.go
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/watchpost/watchpost/internal/models"
)

// ErrNameExists is returned by Add when the endpoint name is already taken.
var ErrNameExists = errors.New("endpoint name already exists")

// Registry is the ordered set of monitored endpoints. The in-memory slice is
// the source of truth; every mutation is written back to the JSON file so the
// set survives restarts. Registration order is preserved and defines the
// order of the published snapshot.
type Registry struct {
	mu        sync.RWMutex
	path      string
	endpoints []models.Endpoint
}

// Load reads the registry file at path. A missing file yields an empty
// registry; an unreadable or unparseable one is an error so a corrupt file
// is never silently overwritten.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read endpoints file: %w", err)
	}

	var endpoints []models.Endpoint
	if len(data) > 0 {
		if err := json.Unmarshal(data, &endpoints); err != nil {
			return nil, fmt.Errorf("failed to parse endpoints file: %w", err)
		}
	}

	return &Registry{path: path, endpoints: endpoints}, nil
}

// Add registers a new endpoint. Names are unique; a duplicate yields
// ErrNameExists and leaves the registry untouched.
func (r *Registry) Add(ep models.Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.endpoints {
		if existing.Name == ep.Name {
			return fmt.Errorf("%w: %s", ErrNameExists, ep.Name)
		}
	}

	r.endpoints = append(r.endpoints, ep)
	r.persist()
	return nil
}

// Remove deletes the named endpoint if present. Removing an unknown name is
// a no-op, not an error.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.endpoints[:0]
	for _, ep := range r.endpoints {
		if ep.Name != name {
			kept = append(kept, ep)
		}
	}
	r.endpoints = kept
	r.persist()
}

// List returns a copy of the registered endpoints in registration order.
func (r *Registry) List() []models.Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// persist writes the current set back to disk. Callers hold the write lock.
// A failed write keeps the in-memory mutation; the error is only logged, so
// the operation still succeeds for the caller.
func (r *Registry) persist() {
	endpoints := r.endpoints
	if endpoints == nil {
		endpoints = []models.Endpoint{} // keep the file a JSON array, never null
	}
	data, err := json.MarshalIndent(endpoints, "", "  ")
	if err != nil {
		log.Errorf("Registry: failed to marshal endpoints: %v", err)
		return
	}

	if err := os.WriteFile(r.path, data, 0600); err != nil {
		log.Errorf("Registry: failed to write endpoints file '%s': %v", r.path, err)
	}
}
