// Package storage is the durable client-storage seam. The note manager and
// template registry write through it best-effort; a failed write leaves the
// in-memory state as the only source of truth until the next successful one.
package storage

import (
	"context"
	"errors"
)

// Fixed keys the application persists under.
const (
	KeyNotes     = "canvasNotes"
	KeyTemplates = "customTemplates"
)

// ErrNotFound signals an absent key. Callers treat it as "no saved data",
// never as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes opaque payloads by key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
