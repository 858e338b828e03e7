// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dex/internal/domain/entities"
)

// SnapshotStore persists a copy of a loaded catalog for use outside the tool.
type SnapshotStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// SaveSnapshot writes records as one snapshot and returns its ID.
	SaveSnapshot(ctx context.Context, source string, records []*entities.Record) (string, error)

	// Close releases the underlying storage.
	Close() error
}
