// SPDX-License-Identifier: MIT

// Package broyden provides tunable options and error definitions for the
// quasi-Newton nonlinear solver.
package broyden

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eqsys/gauss"
	"github.com/katalvlaran/eqsys/matrix"
)

// Default parameters.
const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 100

	// DefaultPivotTolerance is the scaled-pivot threshold of the default
	// linear solver. It is far below gauss.DefaultTolerance because Jacobian
	// approximations of well-posed problems can have small but valid pivots.
	DefaultPivotTolerance = 1e-12

	// MinStepNormSq is the Δx·Δx threshold at or below which the rank-one
	// update is skipped and B is carried over unchanged.
	MinStepNormSq = 1e-16
)

// Sentinel errors for Broyden's method.
var (
	// ErrSingularJacobian is returned when the linear solve against the current
	// Jacobian approximation reports a singular matrix. Wraps matrix.ErrSingular.
	ErrSingularJacobian = fmt.Errorf("broyden: singular Jacobian approximation: %w", matrix.ErrSingular)

	// ErrNotConverged is returned (inside a *matrix.ConvergenceError) when the
	// step-size criterion is not met within MaxIter iterations.
	ErrNotConverged = fmt.Errorf("broyden: %w", matrix.ErrNotConverged)

	// ErrDimensionMismatch is returned when f returns a vector whose length
	// differs from len(x0), or B0 is not n×n.
	ErrDimensionMismatch = fmt.Errorf("broyden: %w", matrix.ErrDimensionMismatch)

	// ErrNaNInf is returned when x0 or a residual f(x) holds NaN or ±Inf.
	ErrNaNInf = fmt.Errorf("broyden: %w", matrix.ErrNaNInf)

	// ErrNilFunc is returned when the residual function is nil.
	ErrNilFunc = errors.New("broyden: residual function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("broyden: invalid option supplied")
)

// Func is a residual function: Solve searches for x with f(x) = 0.
// It must return a fresh slice of len(x) values and must not retain x.
type Func func(x []float64) []float64

// LinearSolver solves a·x = b for the step Δx. Implementations must not
// mutate a or b and should report singular systems with an error matching
// matrix.ErrSingular.
type LinearSolver func(a matrix.Matrix, b []float64) ([]float64, error)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the iteration parameters, the initial Jacobian estimate,
// the inner linear solver and the per-iteration hook.
type Options struct {
	// Tolerance bounds ‖Δx‖₂; the first step below it ends the iteration.
	Tolerance float64

	// MaxIter is the iteration budget (≥ 1).
	MaxIter int

	// Jacobian is a private copy of B0; nil means the identity.
	Jacobian *matrix.Dense

	// Solver solves B·Δx = −f(x) each iteration.
	Solver LinearSolver

	// OnIterate is called after each step with the 1-based iteration, the
	// trial point x + Δx and ‖Δx‖₂. x is a view: do not retain or modify it.
	OnIterate func(iter int, x []float64, step float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Tolerance = 1e-6, MaxIter = 100
//   - identity initial Jacobian
//   - gauss.Solve with DefaultPivotTolerance as the linear solver
//   - no-op OnIterate.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Solver:    gaussSolver,
		OnIterate: func(int, []float64, float64) {},
	}
}

func gaussSolver(a matrix.Matrix, b []float64) ([]float64, error) {
	return gauss.Solve(a, b, gauss.WithTolerance(DefaultPivotTolerance))
}

// WithTolerance sets the step-size threshold. tol must be finite and > 0.
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

// WithJacobian seeds the approximation with a copy of b0, which must be
// square (its size is checked against len(x0) by Solve).
func WithJacobian(b0 matrix.Matrix) Option {
	return func(o *Options) {
		if err := matrix.ValidateNotNil(b0); err != nil {
			o.err = fmt.Errorf("%w: initial Jacobian: %w", ErrOptionViolation, err)
			return
		}
		if err := matrix.ValidateSquare(b0); err != nil {
			o.err = fmt.Errorf("%w: initial Jacobian: %w", ErrOptionViolation, err)
			return
		}
		d, err := matrix.DenseOf(b0)
		if err != nil {
			o.err = fmt.Errorf("%w: initial Jacobian: %w", ErrOptionViolation, err)
			return
		}
		o.Jacobian = d
	}
}

// WithLinearSolver replaces the inner solver used for B·Δx = −f(x).
func WithLinearSolver(s LinearSolver) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: linear solver is nil", ErrOptionViolation)
			return
		}
		o.Solver = s
	}
}

// WithOnIterate registers a hook invoked after every step.
func WithOnIterate(fn func(iter int, x []float64, step float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
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
