/*
Package storage implements the persistent key-value port the profile
engine writes its state envelope through.

The engine persists one whole JSON document under one fixed key, so the
port is deliberately small: Get, Set, Delete. The default implementation
is SQLite at ~/.deal-hub/profile.db using modernc.org/sqlite (pure Go,
CGo-free) with graceful degradation if the database is unavailable; an
in-memory implementation backs tests and ephemeral runs.
*/
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store defines the interface for persistent key-value operations.
type Store interface {
	// Init opens the underlying storage and runs migrations.
	Init() error

	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(key string) error

	// Close releases the underlying storage.
	Close() error
}
