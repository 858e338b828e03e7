package handlers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
)

// LookupHandler answers name/number queries and comparisons against a catalog.
type LookupHandler struct {
	catalog *services.Catalog
	logger  *zap.Logger
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(catalog *services.Catalog, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// LookupResult contains the outcome of one query. Record is nil on a miss.
type LookupResult struct {
	Input  string
	Record *entities.Record
	Found  bool
}

// ComparisonResult holds two resolved queries and, when both hit, their ordering.
type ComparisonResult struct {
	First    LookupResult
	Second   LookupResult
	Ordering entities.Ordering
}

// Complete reports whether both sides were found.
func (r *ComparisonResult) Complete() bool {
	return r.First.Found && r.Second.Found
}

// ListOptions filters and orders a listing.
type ListOptions struct {
	Category string
	SortBy   services.SortKey
	Limit    int // 0 means no limit
}

// Handle resolves input by name or number.
func (h *LookupHandler) Handle(input string) LookupResult {
	record, ok := h.catalog.Find(input)
	h.logger.Debug("lookup",
		zap.String("input", input),
		zap.Bool("found", ok))

	return LookupResult{
		Input:  input,
		Record: record,
		Found:  ok,
	}
}

// Compare resolves both inputs and orders them by total.
func (h *LookupHandler) Compare(first, second string) *ComparisonResult {
	result := &ComparisonResult{
		First:  h.Handle(first),
		Second: h.Handle(second),
	}
	if result.Complete() {
		result.Ordering = result.First.Record.Compare(result.Second.Record)
	}
	return result
}

// List returns catalog records filtered by category and sorted.
func (h *LookupHandler) List(opts ListOptions) ([]*entities.Record, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = services.SortByID
	}

	records, err := h.catalog.Sorted(sortBy)
	if err != nil {
		return nil, fmt.Errorf("sorting records: %w", err)
	}

	if opts.Category != "" {
		keep := make(map[*entities.Record]bool)
		for _, r := range h.catalog.ByCategory(opts.Category) {
			keep[r] = true
		}
		filtered := records[:0]
		for _, r := range records {
			if keep[r] {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}

	return records, nil
}

// Records returns every record in source order.
func (h *LookupHandler) Records() []*entities.Record {
	return h.catalog.Records()
}
