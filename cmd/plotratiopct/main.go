// plotratiopct renders scheduling-policy improvement curves with percent-
// formatted y ticks. Differences from plotratio: the y range defaults to
// ±0.005 and may be overridden by an optional third argument, and the legend
// rewrites the SRPTExcept policy to its paper name SEK.
//
// Usage: plotratiopct [flags] <input> <output.{eps,pdf,svg}> [y-limit]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/isaacg1/srpt-improve/src/logx"
	"github.com/isaacg1/srpt-improve/src/plotchart"
	"github.com/isaacg1/srpt-improve/src/ratio"
	"github.com/isaacg1/srpt-improve/src/table"
)

const defaultYLimit = 0.005

func usage() {
	fmt.Fprintln(os.Stderr, "usage: plotratiopct [flags] <input> <output.{eps,pdf,svg}> [y-limit]")
	flag.PrintDefaults()
}

// parseArgs handles the positional arguments, including the optional symmetric
// y-axis bound.
func parseArgs(args []string) (inPath, outPath string, yLimit float64, err error) {
	yLimit = defaultYLimit
	switch len(args) {
	case 2:
	case 3:
		yLimit, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("y-limit %q is not numeric: %w", args[2], err)
		}
		if yLimit <= 0 {
			return "", "", 0, fmt.Errorf("y-limit must be positive, got %v", yLimit)
		}
	default:
		return "", "", 0, fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
	}
	return args[0], args[1], yLimit, nil
}

// optionsFor builds the percent-variant display configuration.
func optionsFor(yLimit float64) plotchart.Options {
	opts := plotchart.DefaultOptions()
	opts.YLimit = yLimit
	opts.YAsPercent = true
	opts.NameFrom = "SRPTExcept"
	opts.NameTo = "SEK"
	return opts
}

func run(inPath, outPath string, opts plotchart.Options) error {
	if err := plotchart.CheckPath(outPath); err != nil {
		return err
	}
	tbl, err := table.ParseFile(inPath)
	if err != nil {
		return err
	}
	res, err := ratio.Compute(tbl)
	if err != nil {
		return err
	}
	for _, s := range ratio.Summarize(res) {
		logx.Debugf("%s vs %s: mean %.4g min %.4g max %.4g", s.Name, res.Reference, s.Mean, s.Min, s.Max)
	}
	if err := plotchart.Render(res, opts, outPath); err != nil {
		return err
	}
	logx.Infof("wrote %s (%d series, %d points)", outPath, len(res.Series), len(res.Load))
	return nil
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Usage = usage
	flag.Parse()
	logx.SetLevel(*logLevel)
	inPath, outPath, yLimit, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotratiopct: %v\n", err)
		usage()
		os.Exit(2)
	}
	opts := optionsFor(yLimit)
	start := time.Now()
	if err := run(inPath, outPath, opts); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
	logx.TimeTrack(start, "plotratiopct")
}
