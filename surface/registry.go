package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given logical size.
type Factory func(width, height int) (Surface, error)

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// The built-in CPU backend registers at 10 so accelerated backends
	// can claim anything above it.
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// ErrNoBackend is returned when no registered backend is available.
var ErrNoBackend = errors.New("surface: no backend available")

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface backends. It lets alternative pixel
// allocators plug in without the compositing loop knowing about them.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// Register adds a backend to the global registry. A nil available func
// means always available. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// New creates a surface using the best available backend.
func New(width, height int) (Surface, error) {
	return globalRegistry.New(width, height)
}

// NewByName creates a surface using a specific named backend.
func NewByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewByName(name, width, height)
}

// Backends returns names of all available backends sorted by priority
// (highest first).
func Backends() []string {
	return globalRegistry.Backends()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// New creates a surface using the best available backend, trying each in
// priority order.
func (r *Registry) New(width, height int) (Surface, error) {
	names := r.Backends()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewByName(name, width, height)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a surface using a specific named backend.
func (r *Registry) NewByName(name string, width, height int) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("surface: unknown backend %q: %w", name, ErrNoBackend)
	}
	if !entry.Available() {
		return nil, fmt.Errorf("surface: backend %q unavailable: %w", name, ErrNoBackend)
	}
	return entry.Factory(width, height)
}

// Backends returns names of all available backends sorted by priority.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Available() {
			names = append(names, e.Name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ei, ej := r.entries[names[i]], r.entries[names[j]]
		if ei.Priority != ej.Priority {
			return ei.Priority > ej.Priority
		}
		return ei.Name < ej.Name
	})
	return names
}
