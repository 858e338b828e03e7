package main

// Default limits for CLI commands.
const (
	DefaultListLimit = 50
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown", "sqlite"}

// Follow-up menu choices in the interactive session.
const (
	menuAnother = "a"
	menuCompare = "b"
	menuQuit    = "c"
)
