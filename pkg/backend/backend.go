// Package backend provides the public factory for quicklinks storage
// backends while keeping implementations internal.
package backend

import (
	"fmt"

	"github.com/mesh-intelligence/quicklinks/internal/filestore"
	"github.com/mesh-intelligence/quicklinks/internal/memory"
	"github.com/mesh-intelligence/quicklinks/internal/sqlite"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

// New returns an unattached backend for the given name.
// Returns ErrBackendEmpty or ErrBackendUnknown for bad names.
func New(name string) (types.Backend, error) {
	switch name {
	case types.BackendMemory:
		return memory.NewBackend(), nil
	case types.BackendFile:
		return filestore.NewBackend(), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%q: %w", name, types.ErrBackendUnknown)
	}
}

// Open creates the backend named by config and attaches it.
// The caller must Detach the returned backend.
//
// Example:
//
//	b, err := backend.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".quicklinks-db",
//	})
//	defer b.Detach()
func Open(config types.Config) (types.Backend, error) {
	b, err := New(config.Backend)
	if err != nil {
		return nil, err
	}
	if err := b.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return b, nil
}
