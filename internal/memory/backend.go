// Package memory implements an in-process key-value backend. Values live
// only as long as the Backend is attached.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

// Backend implements types.Backend with a map.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	data     map[string]string
}

// NewBackend creates a new memory backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config and starts with an empty map. DataDir is ignored.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	b.data = make(map[string]string)
	b.attached = true
	return nil
}

// Detach drops all values. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.data = nil
	return nil
}

// Get returns the value stored under key.
func (b *Backend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", false, types.ErrBackendDetached
	}
	v, ok := b.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (b *Backend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrBackendDetached
	}
	b.data[key] = value
	return nil
}
