// SPDX-License-Identifier: MIT

// Package roots provides options, results and error definitions for the
// scalar root finders.
package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eqsys/matrix"
)

// Default parameters.
const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 100

	// FlatSecantThreshold is the smallest |f(x1) − f(x0)| Secant divides by.
	FlatSecantThreshold = 1e-12
)

// Sentinel errors for the root finders.
var (
	// ErrNoBracket is returned when f(a)·f(b) ≥ 0 for a bracketing method.
	ErrNoBracket = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative is returned when Newton meets f'(x) = 0.
	ErrZeroDerivative = errors.New("roots: zero derivative")

	// ErrFlatSecant is returned when the secant through the last two points
	// is (numerically) horizontal.
	ErrFlatSecant = errors.New("roots: secant is horizontal")

	// ErrNotConverged is returned when MaxIter iterations pass without meeting
	// the tolerance. Wraps matrix.ErrNotConverged.
	ErrNotConverged = fmt.Errorf("roots: %w", matrix.ErrNotConverged)

	// ErrNilFunc is returned when a required function argument is nil.
	ErrNilFunc = errors.New("roots: function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("roots: invalid option supplied")
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Result is the outcome of a successful search.
type Result struct {
	Root       float64 // approximate root
	Iterations int     // iterations performed (≥ 1)
}

// Option configures a root finder via functional arguments.
type Option func(*Options)

// Options holds the stopping parameters shared by every root finder.
type Options struct {
	// Tolerance bounds the relative approximate error |(x_r − x_old) / x_r|.
	Tolerance float64

	// MaxIter is the iteration budget (≥ 1).
	MaxIter int

	err error
}

// DefaultOptions returns Options with Tolerance = 1e-6 and MaxIter = 100.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter}
}

// WithTolerance sets the relative-error threshold. tol must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration budget. n must be ≥ 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// relErr returns |(xr − xOld) / xr| and false when xr is zero.
func relErr(xr, xOld float64) (float64, bool) {
	if xr == 0 {
		return 0, false
	}

	return math.Abs((xr - xOld) / xr), true
}

func notConverged(op string, o Options, xr float64) error {
	return fmt.Errorf("%s: %w after %d iterations (last estimate %g)", op, ErrNotConverged, o.MaxIter, xr)
}
