package entities

import "fmt"

// InvalidRecordError reports record inputs that violate type or arity rules.
type InvalidRecordError struct {
	Field   string // Which input was rejected
	Value   string // The rejected value, rendered as text
	Message string // Human-readable reason
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record %s %q: %s", e.Field, e.Value, e.Message)
}

// InvalidStatNameError reports a stat label that is not recognized.
type InvalidStatNameError struct {
	Name string
}

func (e *InvalidStatNameError) Error() string {
	return fmt.Sprintf("invalid stat name: %s", e.Name)
}
