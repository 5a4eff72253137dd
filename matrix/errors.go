// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors shared by every solver
// in the module. Solver packages re-export their own sentinels wrapping these
// ones, so errors.Is matches on either level. No algorithm panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels are
// returned wrapped with an operation tag via matrixErrorf; callers match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> NaN/Inf -> structural (zero diagonal,
// singular) -> iteration budget (ErrNotConverged).

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0, c<=0 or ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates structurally incompatible operands, e.g. a
	// non-square coefficient matrix or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a pivot, or a whole row, is zero or numerically
	// indistinguishable from zero under the caller's tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroDiagonal is returned when an algorithm divides by diagonal entries
	// and at least one of them is exactly zero.
	ErrZeroDiagonal = errors.New("matrix: zero diagonal entry")

	// ErrNotConverged indicates that an iterative method exhausted its iteration
	// budget without meeting the tolerance criterion.
	ErrNotConverged = errors.New("matrix: iteration did not converge")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense = "NewDense"
	opFrom     = "NewDenseFrom"
	opIdentity = "Identity"
	opDenseOf  = "DenseOf"
	opMulVec   = "MulVec"
	opSwap     = "SwapRows"
	opRowView  = "RawRowView"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ConvergenceError reports an exhausted iteration budget.
// It unwraps to ErrNotConverged and carries the iteration count and the last
// convergence measure so callers can decide whether to retry with a larger
// budget, a different initial guess or a different relaxation factor.
type ConvergenceError struct {
	Op         string  // solver tag, e.g. "relax.Solve(jacobi)"
	Iterations int     // iterations performed
	Change     float64 // last convergence measure compared against the tolerance
	Tolerance  float64 // tolerance the measure had to fall below
	Err        error   // package sentinel; nil means ErrNotConverged
}

// Error implements error.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (change %.3g, tol %.3g): %v",
		e.Op, e.Iterations, e.Change, e.Tolerance, e.Unwrap())
}

// Unwrap exposes the package sentinel (and through it ErrNotConverged) to errors.Is.
func (e *ConvergenceError) Unwrap() error {
	if e.Err == nil {
		return ErrNotConverged
	}

	return e.Err
}
