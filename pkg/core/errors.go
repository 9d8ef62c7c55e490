package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when a referenced note or folder has no record.
	// Deletes are idempotent and never return it.
	ErrNotFound = errors.New("record not found")

	// ErrCycleDetected is returned when a folder update would make the
	// folder an ancestor of itself.
	ErrCycleDetected = errors.New("folder cycle detected")

	// ErrReadOnly is returned by write operations on a read-only vault.
	ErrReadOnly = errors.New("vault is in read-only mode")
)
