// Package table parses semicolon-delimited simulation result tables.
//
// A result file is line oriented. The first retained line is the header naming
// each column; subsequent numeric lines are data rows. Lines beginning with 'r'
// that are not the header carry string annotations and are kept verbatim but
// ignored by downstream transforms. Blank lines are skipped.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Delimiter separates fields within a line.
const Delimiter = ";"

// RowKind tags how a line was classified.
type RowKind int

const (
	// HeaderRow is a line of column names (any lead character that is
	// neither the string-row marker nor numeric).
	HeaderRow RowKind = iota
	// StringRow is an annotation line beginning with 'r'.
	StringRow
	// NumericRow is a data line; every field converts to float64.
	NumericRow
)

func (k RowKind) String() string {
	switch k {
	case HeaderRow:
		return "header"
	case StringRow:
		return "string"
	case NumericRow:
		return "numeric"
	}
	return "unknown"
}

// Row is one retained line of the input.
type Row struct {
	Kind RowKind
	// Line is the 1-based line number in the source, for diagnostics.
	Line int
	// Fields holds the split strings for header and string rows.
	Fields []string
	// Values holds the parsed numbers for numeric rows.
	Values []float64
}

// Table is the parsed file: an ordered sequence of rows whose first element is
// the header. It is built once and never mutated.
type Table struct {
	rows []Row
}

// ParseError reports a field that failed numeric conversion on a line that was
// classified as a data row.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: field %q is not numeric: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// classify inspects the first character of a non-blank line.
func classify(line string) RowKind {
	switch c := line[0]; {
	case c == 'r':
		return StringRow
	case c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		return NumericRow
	default:
		return HeaderRow
	}
}

// Parse reads the whole stream into a Table. The only failure mode is a
// non-numeric field on a data line; the error identifies the line and field so
// the caller can abort with a precise message instead of substituting a value.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, Delimiter)
		switch classify(line) {
		case NumericRow:
			values := make([]float64, len(fields))
			for i, f := range fields {
				v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Field: f, Err: err}
				}
				values[i] = v
			}
			t.rows = append(t.rows, Row{Kind: NumericRow, Line: lineNo, Values: values})
		case StringRow:
			t.rows = append(t.rows, Row{Kind: StringRow, Line: lineNo, Fields: fields})
		default:
			t.rows = append(t.rows, Row{Kind: HeaderRow, Line: lineNo, Fields: fields})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Rows returns all retained rows in file order.
func (t *Table) Rows() []Row { return t.rows }

// Header returns the column names from the first retained row, or nil if the
// table is empty or starts with numbers. The header may arrive tagged as either
// a header row or a string row: the simulator's own header line begins with
// "rho", which classifies as a string row.
func (t *Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	first := t.rows[0]
	if first.Kind == NumericRow {
		return nil
	}
	return first.Fields
}

// DataRows returns the numeric rows in file order. Annotation string rows after
// the header are excluded.
func (t *Table) DataRows() []Row {
	var out []Row
	for i, r := range t.rows {
		if i == 0 {
			continue
		}
		if r.Kind == NumericRow {
			out = append(out, r)
		}
	}
	return out
}
