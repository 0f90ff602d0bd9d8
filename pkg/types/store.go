package types

import "errors"

// Store is the key-value persistence surface the registry reads and writes
// through. Keys and values are opaque strings.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for storage failures.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value in full.
	Set(key, value string) error
}

// Backend is a Store with an attach/detach lifecycle.
type Backend interface {
	Store

	// Attach connects the Backend to the storage described by config.
	// Creates the DataDir if the backend needs one. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Get and Set return ErrBackendDetached.
	Detach() error
}

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Registry errors.
var (
	ErrCorruptUserLinks = errors.New("stored user links are not a JSON array of links")
	ErrLinkNotFound     = errors.New("link not found")
	ErrSystemLink       = errors.New("system links cannot be modified")
)
