package handlers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
)

// LoadHandler fills a catalog from its source file.
type LoadHandler struct {
	catalog *services.Catalog
	logger  *zap.Logger
}

// NewLoadHandler creates a new load handler.
func NewLoadHandler(catalog *services.Catalog, logger *zap.Logger) *LoadHandler {
	return &LoadHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// LoadResult describes the catalog after a load attempt.
type LoadResult struct {
	Path    string
	Records int  // Records in the catalog after the attempt
	Partial bool // True when the load stopped on a bad line
}

// Handle loads path into the catalog. The result is always returned so the
// caller can keep going with whatever the catalog holds when err is non-nil.
func (h *LoadHandler) Handle(path string) (*LoadResult, error) {
	err := h.catalog.LoadFile(path)
	result := &LoadResult{
		Path:    path,
		Records: h.catalog.Len(),
	}

	if err == nil {
		h.logger.Info("catalog loaded",
			zap.String("path", path),
			zap.Int("records", result.Records))
		return result, nil
	}

	var (
		malformed *services.MalformedRecordError
		invalid   *entities.InvalidRecordError
	)
	switch {
	case services.IsSourceNotFound(err):
		h.logger.Warn("catalog source not found", zap.String("path", path), zap.Error(err))
	case errors.As(err, &malformed), errors.As(err, &invalid):
		result.Partial = true
		h.logger.Warn("catalog load stopped on bad line",
			zap.String("path", path),
			zap.Int("records", result.Records),
			zap.Error(err))
	default:
		h.logger.Error("catalog load failed", zap.String("path", path), zap.Error(err))
	}

	return result, fmt.Errorf("loading %s: %w", path, err)
}
