package plotchart

import (
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/isaacg1/srpt-improve/src/ratio"
)

// svgDPI converts the inch-based figure size to go-chart's pixel canvas.
const svgDPI = 96

// renderSVG is the go-chart backend for screen-oriented .svg output.
func renderSVG(res *ratio.Result, opts Options, path string) error {
	series := make([]chart.Series, 0, len(res.Series))
	for i, s := range res.Series {
		xs, ys := finitePoints(res.Load, s.Values)
		st := chart.Style{
			StrokeWidth:     1.5,
			StrokeColor:     chart.GetDefaultColor(i),
			StrokeDashArray: dashFor(s.Column),
		}
		series = append(series, chart.ContinuousSeries{
			Name:    displayName(s.Name, opts),
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}

	yAxis := chart.YAxis{
		Name:  opts.YLabel,
		Range: &chart.ContinuousRange{Min: -opts.YLimit, Max: opts.YLimit},
	}
	if opts.YAsPercent {
		// Fixed symmetric ticks so the percent labels land on round values.
		yAxis.Ticks = percentTickMarks(opts.YLimit)
	}

	ch := chart.Chart{
		Width:  int(opts.FigureWidth * svgDPI),
		Height: int(opts.FigureHeight * svgDPI),
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Range: &chart.ContinuousRange{Min: opts.XMin, Max: opts.XMax},
		},
		YAxis:  yAxis,
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := ch.Render(chart.SVG, f); err != nil {
		return err
	}
	return f.Close()
}

// percentTickMarks spans [-limit, limit] with five percent-labeled ticks.
func percentTickMarks(limit float64) []chart.Tick {
	values := []float64{-limit, -limit / 2, 0, limit / 2, limit}
	ticks := make([]chart.Tick, len(values))
	for i, v := range values {
		ticks[i] = chart.Tick{Value: v, Label: formatPercent(v)}
	}
	return ticks
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v*100, 'g', -1, 64) + "%"
}
