// Package storage persists the user progress blob.
//
// Backends are dumb key-value slots: one durable, user-scoped slot holding an
// opaque serialized record. Interpretation of the bytes belongs to the
// progress package.
package storage

import (
	"context"
	"errors"
)

// SlotName is the logical name of the progress slot, kept stable across
// storage backends so a record written by one can be read by another.
const SlotName = "type-and-grow-progress"

// ErrNotFound reports that the slot holds no record yet.
var ErrNotFound = errors.New("storage: no record")

// Backend is the load/save contract the progress store depends on.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Remove(ctx context.Context) error
	Close() error
}
