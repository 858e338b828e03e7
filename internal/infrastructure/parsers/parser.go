// Package parsers provides readers for the catalog's delimited source format.
package parsers

// MinFields is the number of fields a data row must carry:
// id, name, type1, type2 and six stats.
const MinFields = 10

// SourceHeader is the column layout of the source format.
var SourceHeader = []string{"id", "name", "type1", "type2", "hp", "attack", "defense", "sp_attack", "sp_defense", "speed"}

// RawRow is one data line split into trimmed fields, before any conversion.
type RawRow struct {
	Fields  []string
	LineNum int // Line number in the source (header is line 1)
}
