// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// StatCount is the number of base stats every record carries.
const StatCount = 6

// MaxCategories is the largest number of categories a record may have.
const MaxCategories = 2

// Record is one catalog entry. It is immutable once built by NewRecord.
type Record struct {
	id         int
	name       string
	categories []string
	stats      [StatCount]int
	total      int
}

// NewRecord validates its inputs and builds a Record.
// The name is normalized to lowercase; categories and stats are copied.
func NewRecord(id int, name string, categories []string, stats []int) (*Record, error) {
	if id <= 0 {
		return nil, &InvalidRecordError{Field: "id", Value: fmt.Sprint(id), Message: "identifier must be positive"}
	}

	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, &InvalidRecordError{Field: "name", Value: name, Message: "name is required"}
	}

	if len(categories) < 1 || len(categories) > MaxCategories {
		return nil, &InvalidRecordError{
			Field:   "categories",
			Value:   strings.Join(categories, ","),
			Message: fmt.Sprintf("expected 1 or %d categories, got %d", MaxCategories, len(categories)),
		}
	}
	for _, c := range categories {
		if strings.TrimSpace(c) == "" {
			return nil, &InvalidRecordError{Field: "categories", Value: c, Message: "category must not be empty"}
		}
	}

	if len(stats) != StatCount {
		return nil, &InvalidRecordError{
			Field:   "stats",
			Value:   fmt.Sprint(stats),
			Message: fmt.Sprintf("expected %d stats, got %d", StatCount, len(stats)),
		}
	}

	r := &Record{
		id:         id,
		name:       normalized,
		categories: append([]string(nil), categories...),
	}
	for i, v := range stats {
		if v < 0 {
			return nil, &InvalidRecordError{
				Field:   Stat(i).String(),
				Value:   fmt.Sprint(v),
				Message: "stat must not be negative",
			}
		}
		r.stats[i] = v
		r.total += v
	}

	return r, nil
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ID returns the record's identifier.
func (r *Record) ID() int { return r.id }

// Name returns the lowercase name.
func (r *Record) Name() string { return r.name }

// Categories returns a copy of the record's categories.
func (r *Record) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Stats returns the six base stats in positional order.
func (r *Record) Stats() [StatCount]int { return r.stats }

// Total returns the sum of the base stats.
func (r *Record) Total() int { return r.total }

// Stat returns the value of a single stat.
func (r *Record) Stat(s Stat) int {
	return r.stats[s]
}

// GetStat looks up a stat by its label, ignoring case.
func (r *Record) GetStat(label string) (int, error) {
	s, err := ParseStat(label)
	if err != nil {
		return 0, err
	}
	return r.stats[s], nil
}

// CategoryLabel renders the categories for display: "fire" or "grass, poison".
func (r *Record) CategoryLabel() string {
	return strings.Join(r.categories, ", ")
}

// String renders the short form, e.g. "Bulbasaur (#1)".
func (r *Record) String() string {
	return fmt.Sprintf("%s (#%d)", capitalize(r.name), r.id)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
