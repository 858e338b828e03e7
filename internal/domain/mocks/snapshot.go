// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/dex/internal/domain/entities"
)

// SnapshotStore is a mock implementation of ports.SnapshotStore.
type SnapshotStore struct {
	SnapshotID string
	Err        error
	SchemaErr  error
	CloseErr   error

	// Captured calls
	SchemaEnsured bool
	Source        string
	Saved         []*entities.Record
	Closed        bool
}

// EnsureSchema records the call and returns SchemaErr.
func (m *SnapshotStore) EnsureSchema(ctx context.Context) error {
	m.SchemaEnsured = true
	return m.SchemaErr
}

// SaveSnapshot captures the records and returns the configured ID or error.
func (m *SnapshotStore) SaveSnapshot(ctx context.Context, source string, records []*entities.Record) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Source = source
	m.Saved = records
	return m.SnapshotID, nil
}

// Close marks the store closed and returns CloseErr.
func (m *SnapshotStore) Close() error {
	m.Closed = true
	return m.CloseErr
}
