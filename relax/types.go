// SPDX-License-Identifier: MIT

// Package relax provides tunable options, the method enum and error
// definitions for the stationary relaxation solvers.
package relax

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/eqsys/matrix"
)

// Default parameters.
const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 100
	DefaultOmega     = 1.0
)

// Sentinel errors for relaxation.
var (
	// ErrZeroDiagonal is returned before any sweep when A has an exact zero
	// on its diagonal. Wraps matrix.ErrZeroDiagonal.
	ErrZeroDiagonal = fmt.Errorf("relax: %w", matrix.ErrZeroDiagonal)

	// ErrNotConverged is returned (inside a *matrix.ConvergenceError) when
	// MaxIter sweeps complete without meeting the tolerance.
	ErrNotConverged = fmt.Errorf("relax: %w", matrix.ErrNotConverged)

	// ErrUnknownMethod is returned for a Method outside the enum.
	ErrUnknownMethod = errors.New("relax: unknown method")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")
)

// Method selects the sweep strategy.
type Method int

// Enum values (stable ordering).
const (
	// Jacobi updates every component from the previous iterate only.
	Jacobi Method = iota
	// GaussSeidel updates in place using the newest values; with ω ≠ 1 it is SOR.
	GaussSeidel
)

// String provides a readable identifier for logs/errors.
func (m Method) String() string {
	switch m {
	case Jacobi:
		return "jacobi"
	case GaussSeidel:
		return "gauss-seidel"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to its Method.
// Accepted (case-insensitive): "jacobi", "gauss-seidel", "gauss_seidel", "gs", "sor".
// "sor" selects GaussSeidel; the relaxation factor comes from WithOmega.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jacobi":
		return Jacobi, nil
	case "gauss-seidel", "gauss_seidel", "gs", "sor":
		return GaussSeidel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. ω outside (0,2)), it is recorded internally
// and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the iteration parameters and the per-sweep hook.
type Options struct {
	// Tolerance bounds the relative change ‖x_new − x_old‖ / ‖x_new‖.
	Tolerance float64

	// MaxIter is the sweep budget (≥ 1).
	MaxIter int

	// Omega is the relaxation factor for GaussSeidel, 0 < ω < 2.
	// Jacobi ignores it.
	Omega float64

	// InitialGuess, if non-nil, seeds the iteration. It must have length n.
	InitialGuess []float64

	// OnSweep is called after each full sweep with the 1-based sweep number,
	// the current iterate and the convergence measure of that sweep.
	// x is a view into solver state: read it, do not retain or modify it.
	OnSweep func(sweep int, x []float64, change float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Tolerance = 1e-6, MaxIter = 100, Omega = 1
//   - zero initial guess
//   - no-op OnSweep.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Omega:     DefaultOmega,
		OnSweep:   func(int, []float64, float64) {},
	}
}

// WithTolerance sets the convergence threshold. tol must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the sweep budget. n must be ≥ 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithOmega sets the SOR relaxation factor, 0 < ω < 2.
// ω < 1 under-relaxes, ω > 1 over-relaxes, ω = 1 is plain Gauss-Seidel.
func WithOmega(w float64) Option {
	return func(o *Options) {
		if !(w > 0 && w < 2) {
			o.err = fmt.Errorf("%w: omega must lie in (0,2) (%g)", ErrOptionViolation, w)
			return
		}
		o.Omega = w
	}
}

// WithInitialGuess seeds the iteration with a copy of x0.
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) {
		if x0 == nil {
			o.err = fmt.Errorf("%w: initial guess is nil", ErrOptionViolation)
			return
		}
		if !matrix.IsFinite(x0) {
			o.err = fmt.Errorf("%w: initial guess: %w", ErrOptionViolation, matrix.ErrNaNInf)
			return
		}
		o.InitialGuess = matrix.CloneVec(x0)
	}
}

// WithOnSweep registers a hook invoked after every sweep.
func WithOnSweep(fn func(sweep int, x []float64, change float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
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
