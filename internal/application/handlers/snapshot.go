package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// SnapshotHandler writes a loaded catalog into a snapshot store.
type SnapshotHandler struct {
	store  ports.SnapshotStore
	logger *zap.Logger
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(store ports.SnapshotStore, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		store:  store,
		logger: logger,
	}
}

// SnapshotResult contains the result of a snapshot export.
type SnapshotResult struct {
	ID      string
	Source  string
	Records int
}

// Handle ensures the schema and saves records as a new snapshot.
func (h *SnapshotHandler) Handle(ctx context.Context, source string, records []*entities.Record) (*SnapshotResult, error) {
	if err := h.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring snapshot schema: %w", err)
	}

	id, err := h.store.SaveSnapshot(ctx, source, records)
	if err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	h.logger.Info("snapshot saved",
		zap.String("id", id),
		zap.String("source", source),
		zap.Int("records", len(records)))

	return &SnapshotResult{
		ID:      id,
		Source:  source,
		Records: len(records),
	}, nil
}

// Close releases the snapshot store.
func (h *SnapshotHandler) Close() error {
	if err := h.store.Close(); err != nil {
		h.logger.Warn("closing snapshot store", zap.Error(err))
		return fmt.Errorf("closing snapshot store: %w", err)
	}
	return nil
}
