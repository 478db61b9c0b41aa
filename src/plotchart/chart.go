// Package plotchart renders improvement-ratio curves to a vector chart file.
//
// Two backends share one options surface, keyed by the output extension:
// gonum/plot writes the print formats (.eps, .pdf) and go-chart writes .svg
// for screen use. Any other extension is rejected before any work happens.
package plotchart

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/isaacg1/srpt-improve/src/ratio"
)

// Options is the display configuration shared by both backends.
type Options struct {
	// FigureWidth and FigureHeight are the canvas size in inches.
	FigureWidth  float64
	FigureHeight float64
	XLabel       string
	YLabel       string
	// XMin and XMax bound the x axis.
	XMin float64
	XMax float64
	// YLimit bounds the y axis symmetrically at ±YLimit. Must be positive.
	YLimit float64
	// YAsPercent formats y tick labels as percentages of 1.0.
	YAsPercent bool
	// NameFrom/NameTo is an exact-substring rewrite applied to column names
	// before use as legend labels. Empty NameFrom disables rewriting.
	NameFrom string
	NameTo   string
}

// DefaultOptions returns the plain-variant configuration: a wide short canvas
// with the load sweep's interesting region and raw decimal y ticks.
func DefaultOptions() Options {
	return Options{
		FigureWidth:  8,
		FigureHeight: 3,
		XLabel:       "Load ρ",
		YLabel:       "Improvement ratio",
		XMin:         0.75,
		XMax:         1.0,
		YLimit:       0.02,
	}
}

// ConfigError reports a rejected rendering configuration. It is raised before
// any file is created.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("output path %q: %s", e.Path, e.Reason)
	}
	return e.Reason
}

// CheckPath validates that path carries a vector-format extension. Callers run
// this before parsing input so a bad output path fails fast.
func CheckPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".eps", ".pdf", ".svg":
		return nil
	}
	return &ConfigError{Path: path, Reason: "extension must be .eps, .pdf or .svg"}
}

// Render draws one line per comparison series and writes exactly one file at
// path. Non-finite ratio values are dropped from their polyline, leaving a gap.
func Render(res *ratio.Result, opts Options, path string) error {
	if err := CheckPath(path); err != nil {
		return err
	}
	if !(opts.YLimit > 0) {
		return &ConfigError{Reason: fmt.Sprintf("y limit must be positive, got %v", opts.YLimit)}
	}
	if strings.ToLower(filepath.Ext(path)) == ".svg" {
		return renderSVG(res, opts, path)
	}
	return renderVG(res, opts, path)
}

// displayName applies the legend rewrite rule to a column name.
func displayName(name string, opts Options) string {
	if opts.NameFrom == "" {
		return name
	}
	return strings.ReplaceAll(name, opts.NameFrom, opts.NameTo)
}

// dashPalette holds dash patterns in points; nil means a solid stroke. The
// sequence matches the figure style of the companion paper: the reference-
// adjacent columns alternate dashed and dash-dot, everything later is solid.
var dashPalette = [][]float64{
	nil,
	{6, 3},
	{6, 3, 1, 3},
	{6, 3},
	nil,
	nil,
	nil,
	nil,
	nil,
}

// dashFor returns the dash pattern for a table column, cycling the palette.
// Column 1 (the reference) maps to index 0, so the first comparison column is
// dashed; a column keeps its style no matter how many columns the file has.
func dashFor(column int) []float64 {
	i := (column - 1) % len(dashPalette)
	if i < 0 {
		i += len(dashPalette)
	}
	return dashPalette[i]
}

// finitePoints filters (x, y) pairs down to those with finite y values.
func finitePoints(xs, ys []float64) ([]float64, []float64) {
	fx := make([]float64, 0, len(xs))
	fy := make([]float64, 0, len(ys))
	for i := range ys {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	return fx, fy
}
