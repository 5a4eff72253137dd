// SPDX-License-Identifier: MIT

package broyden

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// Solve finds x with f(x) = 0 starting from x0.
//
// Algorithm Outline (per iteration):
//  1. Solve B·Δx = −f(x); a singular B fails with ErrSingularJacobian.
//  2. x_new = x + Δx; evaluate f(x_new).
//  3. If ‖Δx‖₂ < tol, return x_new. B is not updated on this iteration.
//  4. If Δx·Δx > MinStepNormSq: B ← B + f(x_new) ⊗ Δx / (Δx·Δx).
//     Otherwise B is kept as is and the iteration continues.
//  5. x ← x_new, f(x) ← f(x_new).
//
// The step size, not the residual norm, is the stopping criterion.
//
// Complexity: per iteration one linear solve (O(n³) with the default solver),
// one call to f and an O(n²) rank-one update.
//
// Errors:
//   - ErrOptionViolation, ErrNilFunc.
//   - matrix.ErrNilMatrix / ErrDimensionMismatch — x0 nil or empty, B0 not n×n,
//     or f returning a vector of the wrong length.
//   - ErrNaNInf — x0 or a residual holds NaN or ±Inf.
//   - ErrSingularJacobian.
//   - *matrix.ConvergenceError wrapping ErrNotConverged.
func Solve(f Func, x0 []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNilFunc
	}
	if x0 == nil {
		return nil, fmt.Errorf("broyden.Solve: x0: %w", matrix.ErrNilMatrix)
	}
	n := len(x0)
	if n == 0 {
		return nil, fmt.Errorf("broyden.Solve: empty x0: %w", ErrDimensionMismatch)
	}
	if !matrix.IsFinite(x0) {
		return nil, fmt.Errorf("broyden.Solve: x0: %w", ErrNaNInf)
	}

	var bm *matrix.Dense
	if o.Jacobian != nil {
		if o.Jacobian.Rows() != n {
			return nil, fmt.Errorf("broyden.Solve: B0 is %dx%d, want %dx%d: %w",
				o.Jacobian.Rows(), o.Jacobian.Cols(), n, n, ErrDimensionMismatch)
		}
		bm = o.Jacobian.Clone().(*matrix.Dense)
	} else if bm, err = matrix.Identity(n); err != nil {
		return nil, fmt.Errorf("broyden.Solve: %w", err)
	}
	rows := bm.RowViews()

	x := matrix.CloneVec(x0)
	fx, err := evaluate(f, x, 0)
	if err != nil {
		return nil, err
	}

	var (
		xNew = matrix.Zeros(n)
		negF = matrix.Zeros(n)
		u    = matrix.Zeros(n) // Δx / (Δx·Δx)
		fNew []float64
		dx   []float64
		step float64
		dd   float64
	)
	for iter := 1; iter <= o.MaxIter; iter++ {
		copy(negF, fx)
		matrix.Scale(-1, negF)
		if dx, err = o.Solver(bm, negF); err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return nil, fmt.Errorf("%w at iteration %d: %w", ErrSingularJacobian, iter, err)
			}
			return nil, fmt.Errorf("broyden.Solve: iteration %d: %w", iter, err)
		}
		if len(dx) != n {
			return nil, fmt.Errorf("broyden.Solve: linear solver returned %d values, want %d: %w",
				len(dx), n, ErrDimensionMismatch)
		}

		copy(xNew, x)
		matrix.AddInPlace(xNew, dx)
		if fNew, err = evaluate(f, xNew, iter); err != nil {
			return nil, err
		}
		step = matrix.Norm(dx)
		o.OnIterate(iter, xNew, step)
		if step < o.Tolerance {
			return matrix.CloneVec(xNew), nil
		}

		if dd = matrix.Dot(dx, dx); dd > MinStepNormSq {
			matrix.ScaleInto(u, dx, 1/dd)
			for i, row := range rows {
				matrix.AddScaled(row, fNew[i], u)
			}
		}

		x, xNew = xNew, x
		fx = fNew
	}

	return nil, &matrix.ConvergenceError{
		Op:         "broyden.Solve",
		Iterations: o.MaxIter,
		Change:     step,
		Tolerance:  o.Tolerance,
		Err:        ErrNotConverged,
	}
}

// evaluate calls f and checks the shape and finiteness of the residual.
func evaluate(f Func, x []float64, iter int) ([]float64, error) {
	fx := f(x)
	if len(fx) != len(x) {
		return nil, fmt.Errorf("broyden.Solve: iteration %d: f returned %d values for %d unknowns: %w",
			iter, len(fx), len(x), ErrDimensionMismatch)
	}
	if !matrix.IsFinite(fx) {
		return nil, fmt.Errorf("broyden.Solve: iteration %d: residual: %w", iter, ErrNaNInf)
	}

	return fx, nil
}
