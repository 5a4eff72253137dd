// SPDX-License-Identifier: MIT

// Command convplot compares the direct and relaxation solvers on a
// diagonally dominant tridiagonal system and plots the relaxation history.
//
// Usage:
//
//	convplot [flags]
//
// The system is the 1-D Poisson-like stencil
//
//	4·x[i] − x[i−1] − x[i+1] = b[i],  b[i] = 1 + i mod 3
//
// It is solved once with gauss and thomas (their maximum disagreement is
// printed), then with every requested relaxation method. For each method a
// table row reports the sweep count and the maximum error against the direct
// solution, and the per-sweep relative change is drawn on a log scale.
//
// Examples:
//
//	convplot
//	convplot -n 200 -tol 1e-10 -omega 1.1 -out sor.png
//	convplot -methods jacobi,sor
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/eqsys/gauss"
	"github.com/katalvlaran/eqsys/matrix"
	"github.com/katalvlaran/eqsys/relax"
	"github.com/katalvlaran/eqsys/thomas"
)

// run is one relaxation configuration and its recorded history.
type run struct {
	label   string
	method  relax.Method
	omega   float64
	changes []float64
	x       []float64
	err     error
}

func main() {
	n := flag.Int("n", 50, "system size")
	tol := flag.Float64("tol", relax.DefaultTolerance, "relaxation tolerance on the relative change")
	maxIter := flag.Int("max-iter", 500, "sweep budget per method")
	omega := flag.Float64("omega", 1.25, "relaxation factor used by the sor method")
	out := flag.String("out", "convergence.png", "output PNG path (empty disables the plot)")
	methods := flag.String("methods", "jacobi,gauss-seidel,sor", "comma-separated methods: jacobi, gauss-seidel, sor")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares direct and relaxation solvers on a tridiagonal system.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *n < 2 {
		log.Fatalf("convplot: -n must be >= 2, got %d", *n)
	}

	bands, b := system(*n)
	a, err := bands.ToDense()
	if err != nil {
		log.Fatalf("convplot: build system: %v", err)
	}

	direct, err := gauss.Solve(a, b, gauss.WithTolerance(1e-12))
	if err != nil {
		log.Fatalf("convplot: gauss: %v", err)
	}
	banded, err := thomas.SolveBands(bands, b)
	if err != nil {
		log.Fatalf("convplot: thomas: %v", err)
	}
	residual, err := gauss.Residual(a, direct, b)
	if err != nil {
		log.Fatalf("convplot: residual: %v", err)
	}
	fmt.Printf("n=%d  max|gauss-thomas|=%.3e  ‖Ax-b‖=%.3e\n\n", *n, maxDiff(direct, banded), residual)

	runs, err := parseRuns(*methods, *omega)
	if err != nil {
		log.Fatalf("convplot: %v", err)
	}
	for _, r := range runs {
		r.x, r.err = relax.Solve(a, b, r.method,
			relax.WithTolerance(*tol),
			relax.WithMaxIter(*maxIter),
			relax.WithOmega(r.omega),
			relax.WithOnSweep(func(_ int, _ []float64, change float64) {
				r.changes = append(r.changes, change)
			}),
		)
	}

	printTable(runs, direct)

	if *out == "" {
		return
	}
	if err = savePlot(runs, *out); err != nil {
		log.Fatalf("convplot: plot: %v", err)
	}
	fmt.Printf("\nwrote %s\n", *out)
}

// system builds the bands and right-hand side of the n×n test system.
func system(n int) (thomas.Bands, []float64) {
	bd := thomas.Bands{
		Sub:   make([]float64, n),
		Main:  make([]float64, n),
		Super: make([]float64, n),
	}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		bd.Main[i] = 4
		if i > 0 {
			bd.Sub[i] = -1
		}
		if i < n-1 {
			bd.Super[i] = -1
		}
		b[i] = float64(1 + i%3)
	}

	return bd, b
}

func parseRuns(list string, omega float64) ([]*run, error) {
	var runs []*run
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m, err := relax.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		r := &run{label: m.String(), method: m, omega: relax.DefaultOmega}
		if strings.EqualFold(name, "sor") {
			r.label = fmt.Sprintf("sor (ω=%.2f)", omega)
			r.omega = omega
		}
		runs = append(runs, r)
	}
	if len(runs) == 0 {
		return nil, errors.New("no methods selected")
	}

	return runs, nil
}

func printTable(runs []*run, direct []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Method\tSweeps\tMax error\tStatus\n")
	fmt.Fprintf(tw, "------\t------\t---------\t------\n")
	for _, r := range runs {
		status, maxErr := "converged", "-"
		var ce *matrix.ConvergenceError
		switch {
		case errors.As(r.err, &ce):
			status = fmt.Sprintf("not converged (change %.2e)", ce.Change)
		case r.err != nil:
			status = r.err.Error()
		default:
			maxErr = fmt.Sprintf("%.3e", maxDiff(r.x, direct))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.label, len(r.changes), maxErr, status)
	}
	if err := tw.Flush(); err != nil {
		log.Printf("convplot: flush table: %v", err)
	}
}

func savePlot(runs []*run, path string) error {
	p := plot.New()
	p.Title.Text = "Relaxation convergence"
	p.X.Label.Text = "sweep"
	p.Y.Label.Text = "relative change"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	var lines []interface{}
	for _, r := range runs {
		pts := make(plotter.XYs, 0, len(r.changes))
		for i, c := range r.changes {
			if c > 0 && !math.IsInf(c, 0) {
				pts = append(pts, plotter.XY{X: float64(i + 1), Y: c})
			}
		}
		if len(pts) > 0 {
			lines = append(lines, r.label, pts)
		}
	}
	if len(lines) == 0 {
		return errors.New("nothing to plot")
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// maxDiff returns max |a[i] − b[i]|.
func maxDiff(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}
