package services

import "fmt"

// SourceNotFoundError is returned when the catalog source cannot be opened.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// MalformedRecordError reports a source line that breaks the field-count or
// numeric-parse rules.
type MalformedRecordError struct {
	Line    int    // Line number (1-indexed, header is line 1)
	Field   string // Which field has the error, if known
	Value   string // The offending value
	Message string // Human-readable error message
	Err     error  // Underlying parse error, if any
}

func (e *MalformedRecordError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("malformed record on line %d: %s", e.Line, msg)
	}
	return "malformed record: " + msg
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
