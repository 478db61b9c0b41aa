// Package ratio derives relative-improvement series from a parsed result table.
//
// Column 0 of the table is the offered load (the x axis), column 1 is the
// reference policy's metric, and every later column is a comparison policy.
// The improvement of a comparison value v over the reference value ref is
// 1 - v/ref: positive when the comparison policy beats the reference.
package ratio

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/isaacg1/srpt-improve/src/table"
)

// Series is one comparison column's improvement curve.
type Series struct {
	// Name is the header name of the column, verbatim.
	Name string
	// Column is the column's index in the source table. Renderers key line
	// styles off this so a column keeps its style regardless of how many
	// columns precede it in the output.
	Column int
	// Values is the improvement ratio per data row, aligned with Load.
	Values []float64
}

// Result is the transform output: the shared x axis plus one Series per
// comparison column, in header order.
type Result struct {
	Load      []float64
	Reference string
	Series    []Series
}

// ShapeError reports a data row whose field count does not match the header.
type ShapeError struct {
	Line int
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("line %d: row has %d fields, header has %d", e.Line, e.Got, e.Want)
}

// Compute builds the improvement series for every comparison column.
// Non-finite ratios from a zero reference are passed through unmodified; they
// are data for the renderer, not an error.
func Compute(t *table.Table) (*Result, error) {
	header := t.Header()
	if header == nil {
		return nil, errors.New("table has no header row")
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d columns, need a load column and a reference column", len(header))
	}
	rows := t.DataRows()
	res := &Result{
		Load:      make([]float64, len(rows)),
		Reference: header[1],
	}
	for i, r := range rows {
		if len(r.Values) != len(header) {
			return nil, &ShapeError{Line: r.Line, Got: len(r.Values), Want: len(header)}
		}
		res.Load[i] = r.Values[0]
	}
	for c := 2; c < len(header); c++ {
		s := Series{Name: header[c], Column: c, Values: make([]float64, len(rows))}
		for i, r := range rows {
			s.Values[i] = 1 - r.Values[c]/r.Values[1]
		}
		res.Series = append(res.Series, s)
	}
	return res, nil
}

// Summary aggregates one comparison column's improvement curve for
// operator-facing logging.
type Summary struct {
	Name string
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes per-column mean/min/max improvement. Non-finite ratios
// (zero reference) are excluded from the aggregates; a column with no finite
// values reports NaN throughout.
func Summarize(res *Result) []Summary {
	out := make([]Summary, 0, len(res.Series))
	for _, s := range res.Series {
		finite := make([]float64, 0, len(s.Values))
		for _, v := range s.Values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
		sum := Summary{Name: s.Name, Mean: math.NaN(), Min: math.NaN(), Max: math.NaN()}
		if len(finite) > 0 {
			sum.Mean = stat.Mean(finite, nil)
			sum.Min = floats.Min(finite)
			sum.Max = floats.Max(finite)
		}
		out = append(out, sum)
	}
	return out
}
