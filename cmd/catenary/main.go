// Command catenary solves the hanging-cable curve between two anchors and
// prints its parameters and a sampled trace.
//
// Usage:
//
//	catenary [flags]
//
// Examples:
//
//	catenary -x0 100 -y0 200 -x1 500 -y1 500
//	catenary -x0 0 -y0 0 -x1 400 -y1 0 -scale 2 -points 9
//	catenary -x0 500 -y0 80 -x1 100 -y1 40 -ydown -length 700 -v
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-synth/curve/catenary"
)

type options struct {
	problem catenary.Problem
	scale   float64
	length  float64
	seed    float64
	tol     float64
	iter    int
	points  int
	yDown   bool
}

func main() {
	var opts options
	var verbose bool

	flag.Float64Var(&opts.problem.Start.X, "x0", 100, "start anchor x")
	flag.Float64Var(&opts.problem.Start.Y, "y0", 200, "start anchor y")
	flag.Float64Var(&opts.problem.End.X, "x1", 500, "end anchor x")
	flag.Float64Var(&opts.problem.End.Y, "y1", 500, "end anchor y")
	flag.Float64Var(&opts.scale, "scale", catenary.DefaultLengthScale, "cable length as a multiple of the anchor distance")
	flag.Float64Var(&opts.length, "length", 0, "explicit cable length (overrides -scale)")
	flag.Float64Var(&opts.seed, "seed", catenary.DefaultSeed, "initial Newton iterate")
	flag.Float64Var(&opts.tol, "tol", catenary.DefaultTolerance, "convergence tolerance on |f(a)|")
	flag.IntVar(&opts.iter, "iter", catenary.DefaultMaxIterations, "maximum Newton iterations")
	flag.IntVar(&opts.points, "points", 11, "number of trace points (0 disables the trace)")
	flag.BoolVar(&opts.yDown, "ydown", false, "treat y as pointing down (screen coordinates)")
	flag.BoolVar(&verbose, "v", false, "log every Newton iteration")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: catenary [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Solves the catenary through two anchor points.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  catenary -x0 100 -y0 200 -x1 500 -y1 500\n")
		fmt.Fprintf(os.Stderr, "  catenary -x0 0 -y0 0 -x1 400 -y1 0 -scale 2 -points 9\n")
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer, log logrus.FieldLogger) error {
	axis := catenary.YUp
	if opts.yDown {
		axis = catenary.YDown
	}

	c, err := catenary.Solve(opts.problem,
		catenary.WithLengthScale(opts.scale),
		catenary.WithLength(opts.length),
		catenary.WithSeed(opts.seed),
		catenary.WithTolerance(opts.tol),
		catenary.WithMaxIterations(opts.iter),
		catenary.WithAxis(axis),
		catenary.WithLogger(log),
	)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "axis\t%v\n", axis)
	fmt.Fprintf(w, "length\t%.6f\n", c.Length())
	fmt.Fprintf(w, "alpha\t%.6f\n", c.Alpha())
	fmt.Fprintf(w, "x_offset\t%.6f\n", c.XOffset())
	fmt.Fprintf(w, "y_offset\t%.6f\n", c.YOffset())
	fmt.Fprintf(w, "iterations\t%d\n", c.Iterations())
	fmt.Fprintf(w, "flipped\t%t\n", c.Flipped())

	if opts.points > 0 {
		pts, err := c.Trace(opts.points)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nx\ty\n")
		for _, p := range pts {
			fmt.Fprintf(w, "%.3f\t%.3f\n", p.X, p.Y)
		}
	}
	return w.Flush()
}
