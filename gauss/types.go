// SPDX-License-Identifier: MIT

// Package gauss defines options and error definitions for Gaussian elimination.
package gauss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eqsys/matrix"
)

// DefaultTolerance is the scaled-pivot threshold below which the matrix is
// reported singular.
const DefaultTolerance = 1e-6

// Sentinel errors for Gaussian elimination.
var (
	// ErrSingular is returned when a scaled pivot magnitude falls below the
	// tolerance, or a row of A is entirely zero. It wraps matrix.ErrSingular.
	ErrSingular = fmt.Errorf("gauss: %w", matrix.ErrSingular)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gauss: invalid option supplied")
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the elimination parameters.
type Options struct {
	// Tolerance is the minimum accepted scaled pivot |A[p,k]| / s[p].
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance sets the singularity threshold for scaled pivots.
// tol must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
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
