package plotchart

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/isaacg1/srpt-improve/src/ratio"
)

// renderVG is the gonum/plot backend for the print formats (.eps, .pdf); the
// format is inferred from the extension by plot.Save.
func renderVG(res *ratio.Result, opts Options, path string) error {
	p := plot.New()
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Min, p.X.Max = opts.XMin, opts.XMax
	p.Y.Min, p.Y.Max = -opts.YLimit, opts.YLimit
	if opts.YAsPercent {
		p.Y.Tick.Marker = percentTicks{inner: plot.DefaultTicks{}}
	}
	// Lower-left legend anchor: Left true, Top defaults to bottom.
	p.Legend.Left = true

	for i, s := range res.Series {
		xs, ys := finitePoints(res.Load, s.Values)
		xys := make(plotter.XYs, len(xs))
		for j := range xs {
			xys[j].X = xs[j]
			xys[j].Y = ys[j]
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.LineStyle.Width = vg.Points(1)
		ln.LineStyle.Color = plotutil.Color(i)
		ln.LineStyle.Dashes = dashLengths(dashFor(s.Column))
		p.Add(ln)
		p.Legend.Add(displayName(s.Name, opts), ln)
	}

	w := vg.Length(opts.FigureWidth) * vg.Inch
	h := vg.Length(opts.FigureHeight) * vg.Inch
	return p.Save(w, h, path)
}

// dashLengths converts a point-valued dash pattern to vg lengths.
func dashLengths(pattern []float64) []vg.Length {
	if pattern == nil {
		return nil
	}
	out := make([]vg.Length, len(pattern))
	for i, v := range pattern {
		out[i] = vg.Points(v)
	}
	return out
}

// percentTicks decorates a Ticker so labeled ticks read as percentages of 1.0
// (0.005 renders as "0.5%"). Unlabeled minor ticks pass through.
type percentTicks struct {
	inner plot.Ticker
}

func (pt percentTicks) Ticks(min, max float64) []plot.Tick {
	ticks := pt.inner.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(t.Value*100, 'g', -1, 64) + "%"
	}
	return ticks
}
