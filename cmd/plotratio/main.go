// plotratio renders scheduling-policy improvement curves from a semicolon-
// delimited result table. Plain variant: raw decimal y ticks, fixed ±0.02
// y range, legend labels taken verbatim from the header.
//
// Usage: plotratio [flags] <input> <output.{eps,pdf,svg}>
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/isaacg1/srpt-improve/src/logx"
	"github.com/isaacg1/srpt-improve/src/plotchart"
	"github.com/isaacg1/srpt-improve/src/ratio"
	"github.com/isaacg1/srpt-improve/src/table"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: plotratio [flags] <input> <output.{eps,pdf,svg}>")
	flag.PrintDefaults()
}

// run executes the whole pipeline: output-path check first so a bad extension
// fails before any parsing, then parse, transform, render.
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
	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	start := time.Now()
	if err := run(args[0], args[1], plotchart.DefaultOptions()); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
	logx.TimeTrack(start, "plotratio")
}
