package ratio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/isaacg1/srpt-improve/src/table"
)

func mustTable(t *testing.T, in string) *table.Table {
	t.Helper()
	tbl, err := table.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tbl
}

func TestComputeSeriesCount(t *testing.T) {
	tbl := mustTable(t, "name;ref;a;b;c\n0.8;10;9;11;10\n0.9;20;18;22;20\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// One series per column after the reference: header length - 2.
	if len(res.Series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(res.Series))
	}
	for _, s := range res.Series {
		if len(s.Values) != 2 {
			t.Fatalf("series %s has %d values, want 2", s.Name, len(s.Values))
		}
	}
	if res.Series[0].Name != "a" || res.Series[1].Name != "b" || res.Series[2].Name != "c" {
		t.Fatalf("series order does not match header: %v", res.Series)
	}
}

func TestComputeKnownExample(t *testing.T) {
	tbl := mustTable(t, "name;SRPT;SRPTExcept\n0.80;10.0;9.0\n0.90;20.0;22.0\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	got := res.Series[0].Values
	want := []float64{0.1, -0.1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("ratio[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if res.Load[0] != 0.80 || res.Load[1] != 0.90 {
		t.Fatalf("load series wrong: %v", res.Load)
	}
	if res.Reference != "SRPT" {
		t.Fatalf("reference = %q, want SRPT", res.Reference)
	}
}

func TestComputeEqualColumnsGiveZero(t *testing.T) {
	tbl := mustTable(t, "name;ref;same\n0.8;10;10\n0.9;20;20\n0.95;30;30\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i, v := range res.Series[0].Values {
		if v != 0 {
			t.Fatalf("ratio[%d] = %v, want exactly 0", i, v)
		}
	}
}

func TestComputeBoundaryValues(t *testing.T) {
	// Comparison 0 with nonzero reference -> ratio 1.
	// Reference 0 -> non-finite ratio, passed through, never a crash.
	tbl := mustTable(t, "name;ref;cmp\n0.8;10;0\n0.9;0;5\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	vals := res.Series[0].Values
	if vals[0] != 1 {
		t.Fatalf("zero comparison should give ratio 1, got %v", vals[0])
	}
	if !math.IsInf(vals[1], 0) && !math.IsNaN(vals[1]) {
		t.Fatalf("zero reference should give non-finite ratio, got %v", vals[1])
	}
}

func TestComputeShapeError(t *testing.T) {
	tbl := mustTable(t, "name;ref;a;b\n0.8;10;9\n")
	_, err := Compute(tbl)
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %T: %v", err, err)
	}
	if se.Got != 3 || se.Want != 4 || se.Line != 2 {
		t.Fatalf("wrong shape diagnostics: %+v", se)
	}
}

func TestComputeNoHeader(t *testing.T) {
	tbl := mustTable(t, "0.8;10;9\n")
	if _, err := Compute(tbl); err == nil {
		t.Fatalf("expected error for table without header")
	}
}

func TestComputeIgnoresAnnotationRows(t *testing.T) {
	tbl := mustTable(t, "name;ref;a\n0.8;10;9\nr;ignore;me\n0.9;20;18\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(res.Load) != 2 {
		t.Fatalf("annotation row leaked into data: %d points", len(res.Load))
	}
}

func TestSummarizeSkipsNonFinite(t *testing.T) {
	tbl := mustTable(t, "name;ref;a\n0.8;10;9\n0.9;0;5\n0.95;20;24\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	sums := Summarize(res)
	if len(sums) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(sums))
	}
	s := sums[0]
	// Finite ratios are 0.1 and -0.2; the Inf from the zero reference is excluded.
	if math.Abs(s.Mean-(-0.05)) > 1e-12 || s.Min != -0.2 || s.Max != 0.1 {
		t.Fatalf("summary wrong: %+v", s)
	}
}

func TestSummarizeAllNonFinite(t *testing.T) {
	tbl := mustTable(t, "name;ref;a\n0.8;0;5\n")
	res, err := Compute(tbl)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	s := Summarize(res)[0]
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Min) || !math.IsNaN(s.Max) {
		t.Fatalf("all-non-finite column should summarize as NaN: %+v", s)
	}
}
