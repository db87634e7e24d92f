package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable marks a transient store failure. Callers get it
	// unwrapped with no retry; surfacing it is the caller's problem.
	ErrUnavailable = errors.New("store unavailable")
)

// Field is one component of a record key.
type Field struct {
	Name  string
	Value any
}

// Key identifies a stored record. Single-field keys are the common case;
// composite keys list the partition field first.
type Key []Field

// Store is a collection-agnostic key-value adapter. Every component above
// the storage layer goes through this contract, which keeps the backing
// store swappable (MongoDB in production, the in-memory store in tests).
type Store[T any] interface {
	// Get returns the first record matching the key, or ErrNotFound.
	Get(ctx context.Context, key Key) (*T, error)

	// ScanAll returns every record in the collection as one flattened,
	// unordered sequence.
	ScanAll(ctx context.Context) ([]T, error)

	// Put writes the full record, overwriting any existing record with
	// the same key. Last write wins.
	Put(ctx context.Context, key Key, record T) error

	// UpdatePartial applies only the named field writes. A blind update
	// against a missing key succeeds by creating a partial record; that
	// looseness is carried over deliberately from the existing behavior.
	UpdatePartial(ctx context.Context, key Key, expr UpdateExpression) error

	// Delete removes the record. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
}
