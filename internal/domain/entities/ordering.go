package entities

// Ordering is the outcome of comparing two records.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Symbol renders the ordering as a relational operator.
func (o Ordering) Symbol() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "="
	}
}

// String returns a word for the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "lesser"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Compare orders two records by total alone. Records with the same total
// are Equal even when their names and identifiers differ.
func (r *Record) Compare(other *Record) Ordering {
	switch {
	case r.total < other.total:
		return Less
	case r.total > other.total:
		return Greater
	default:
		return Equal
	}
}

// Equal reports whether both records have the same total.
func (r *Record) Equal(other *Record) bool { return r.Compare(other) == Equal }

// NotEqual reports whether the totals differ.
func (r *Record) NotEqual(other *Record) bool { return r.Compare(other) != Equal }

// Less reports whether r has the smaller total.
func (r *Record) Less(other *Record) bool { return r.Compare(other) == Less }

// LessOrEqual reports whether r's total is not greater than other's.
func (r *Record) LessOrEqual(other *Record) bool { return r.Compare(other) != Greater }

// Greater reports whether r has the larger total.
func (r *Record) Greater(other *Record) bool { return r.Compare(other) == Greater }

// GreaterOrEqual reports whether r's total is not less than other's.
func (r *Record) GreaterOrEqual(other *Record) bool { return r.Compare(other) != Less }

// CompareRecords adapts Compare for slices.SortFunc.
func CompareRecords(a, b *Record) int {
	return int(a.Compare(b))
}
