package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/parsers"
)

// SortKey selects the ordering returned by Catalog.Sorted.
type SortKey string

const (
	SortByID    SortKey = "id"
	SortByName  SortKey = "name"
	SortByTotal SortKey = "total"
)

// SortKeys lists the supported sort keys.
var SortKeys = []SortKey{SortByID, SortByName, SortByTotal}

// Catalog is an in-memory, name-keyed collection of records built from a
// delimited text source. It is populated by Load and only read afterwards.
type Catalog struct {
	entries map[string]*entities.Record
	order   []string // names in first-insertion order
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*entities.Record),
	}
}

// LoadFile opens path and loads it. The file is closed on every exit path.
func (c *Catalog) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &SourceNotFoundError{Path: path, Err: err}
	}
	defer file.Close()

	return c.Load(file)
}

// Load reads records from r, skipping the header line. Each line is handled
// on its own: lines before a failing line stay in the catalog and the failing
// line inserts nothing. A repeated name replaces the earlier record.
func (c *Catalog) Load(r io.Reader) error {
	reader := parsers.NewLineReader(r)

	for {
		row, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &MalformedRecordError{Line: row.LineNum, Message: "unreadable line", Err: err}
		}

		record, err := parseRow(row)
		if err != nil {
			return err
		}
		c.put(record)
	}
}

// parseRow converts one source row into a Record.
func parseRow(row parsers.RawRow) (*entities.Record, error) {
	fields := row.Fields
	if len(fields) < parsers.MinFields {
		return nil, &MalformedRecordError{
			Line:    row.LineNum,
			Value:   strings.Join(fields, ","),
			Message: fmt.Sprintf("expected at least %d fields, got %d", parsers.MinFields, len(fields)),
		}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, &MalformedRecordError{Line: row.LineNum, Field: "id", Value: fields[0], Message: "not an integer", Err: err}
	}

	categories := []string{fields[2]}
	if fields[3] != "" {
		categories = append(categories, fields[3])
	}

	stats := make([]int, entities.StatCount)
	for i := range stats {
		raw := fields[4+i]
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &MalformedRecordError{
				Line:    row.LineNum,
				Field:   entities.Stat(i).String(),
				Value:   raw,
				Message: "not an integer",
				Err:     err,
			}
		}
		stats[i] = v
	}

	record, err := entities.NewRecord(id, fields[1], categories, stats)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", row.LineNum, err)
	}
	return record, nil
}

// put stores a record by name. An overwritten name keeps its position.
func (c *Catalog) put(record *entities.Record) {
	if _, exists := c.entries[record.Name()]; !exists {
		c.order = append(c.order, record.Name())
	}
	c.entries[record.Name()] = record
}

// Find resolves input by exact name, then by identifier when input is all
// digits. A miss returns (nil, false); it is not an error.
func (c *Catalog) Find(input string) (*entities.Record, bool) {
	key := entities.NormalizeName(input)
	if record, ok := c.entries[key]; ok {
		return record, true
	}

	if !isDigits(key) {
		return nil, false
	}
	id, err := strconv.Atoi(key)
	if err != nil {
		return nil, false
	}
	for _, name := range c.order {
		if record := c.entries[name]; record.ID() == id {
			return record, true
		}
	}
	return nil, false
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Records returns every record in first-insertion order.
func (c *Catalog) Records() []*entities.Record {
	records := make([]*entities.Record, 0, len(c.order))
	for _, name := range c.order {
		records = append(records, c.entries[name])
	}
	return records
}

// Sorted returns every record ordered by key. Totals sort highest first;
// ties fall back to identifier.
func (c *Catalog) Sorted(key SortKey) ([]*entities.Record, error) {
	records := c.Records()

	switch key {
	case SortByID:
		slices.SortStableFunc(records, byID)
	case SortByName:
		slices.SortStableFunc(records, func(a, b *entities.Record) int {
			return strings.Compare(a.Name(), b.Name())
		})
	case SortByTotal:
		slices.SortStableFunc(records, func(a, b *entities.Record) int {
			if cmp := entities.CompareRecords(b, a); cmp != 0 {
				return cmp
			}
			return byID(a, b)
		})
	default:
		return nil, fmt.Errorf("unknown sort key %q (valid: %v)", key, SortKeys)
	}

	return records, nil
}

func byID(a, b *entities.Record) int {
	return a.ID() - b.ID()
}

// ByCategory returns records carrying category, in first-insertion order.
func (c *Catalog) ByCategory(category string) []*entities.Record {
	want := entities.NormalizeName(category)

	var matches []*entities.Record
	for _, record := range c.Records() {
		for _, cat := range record.Categories() {
			if strings.EqualFold(cat, want) {
				matches = append(matches, record)
				break
			}
		}
	}
	return matches
}

// IsSourceNotFound reports whether err means the source could not be opened.
func IsSourceNotFound(err error) bool {
	var target *SourceNotFoundError
	return errors.As(err, &target)
}
