package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the longest source line the reader accepts.
const MaxLineSize = 1024 * 1024

// LineReader splits the source one line at a time on every comma. Quotes
// carry no meaning, so a field can never span lines.
type LineReader struct {
	scanner    *bufio.Scanner
	lineNum    int
	headerRead bool
}

// NewLineReader wraps r. Rows may have any number of fields; callers check arity.
func NewLineReader(r io.Reader) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &LineReader{scanner: scanner}
}

// Next returns the next data row. The first line is the header and is
// skipped; blank lines are ignored. It returns io.EOF when the source is
// exhausted, so an empty source reads the same as one with only a header.
func (p *LineReader) Next() (RawRow, error) {
	for p.scanner.Scan() {
		p.lineNum++
		if !p.headerRead {
			p.headerRead = true
			continue
		}

		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		return RawRow{Fields: fields, LineNum: p.lineNum}, nil
	}

	if err := p.scanner.Err(); err != nil {
		line := p.lineNum + 1
		return RawRow{LineNum: line}, fmt.Errorf("line %d: %w", line, err)
	}
	return RawRow{}, io.EOF
}
