package main

import (
	"strings"
	"testing"
)

func TestParseLoads(t *testing.T) {
	loads, err := parseLoads("0.5, 0.9,0.95")
	if err != nil {
		t.Fatalf("parseLoads: %v", err)
	}
	want := []float64{0.5, 0.9, 0.95}
	if len(loads) != len(want) {
		t.Fatalf("got %d loads, want %d", len(loads), len(want))
	}
	for i := range want {
		if loads[i] != want[i] {
			t.Fatalf("loads[%d] = %v, want %v", i, loads[i], want[i])
		}
	}
}

func TestParseLoadsRejectsGarbage(t *testing.T) {
	if _, err := parseLoads("0.5,fast"); err == nil {
		t.Fatalf("expected error for non-numeric load")
	}
}

func TestFormatFloatRoundTrips(t *testing.T) {
	// Output must survive the parser's float conversion without loss.
	for _, v := range []float64{0.903, 12.300000000001, 1e-9} {
		s := formatFloat(v)
		if strings.Contains(s, ";") {
			t.Fatalf("formatted float contains the delimiter: %q", s)
		}
	}
}

func TestDefaultLoadsAreOrderedInUnitInterval(t *testing.T) {
	prev := 0.0
	for i, rho := range defaultLoads {
		if rho <= prev || rho >= 1 {
			t.Fatalf("load %d = %v out of order or outside (0,1)", i, rho)
		}
		prev = rho
	}
}
