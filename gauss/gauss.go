// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqsys/matrix"
)

// Solve — Gaussian elimination with scaled partial pivoting.
//
// Description:
//
//	Solves A·x = b for a general dense square A. Pivot rows are chosen by
//	their magnitude relative to the row's largest entry, which keeps rows with
//	large but unbalanced coefficients from dominating the choice.
//
// Algorithm Outline:
//  1. s[i] = max_j |A[i,j]|; a zero row is singular.
//  2. For k = 0..n-2:
//     p = argmax_{i∈[k,n)} |A[i,k]| / s[i] (first index wins ties);
//     fail if that ratio < tol; swap rows k and p (with b and s);
//     for i > k: factor = A[i,k]/A[k,k], A[i,k+1:] -= factor*A[k,k+1:], b[i] -= factor*b[k].
//  3. Fail if |A[n-1,n-1]| / s[n-1] < tol.
//  4. Back substitution x[i] = (b[i] − A[i,i+1:]·x[i+1:]) / A[i,i].
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²) for the private working copy of A.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — invalid shapes.
//   - matrix.ErrNaNInf — b holds NaN or ±Inf.
//   - ErrSingular      — scaled pivot below tol or a zero row.
//   - ErrOptionViolation.
//
// a and b are never mutated.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("gauss.Solve: %w", err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("gauss.Solve: %w", err)
	}

	w, err := matrix.DenseOf(a)
	if err != nil {
		return nil, fmt.Errorf("gauss.Solve: %w", err)
	}
	n := w.Rows()
	rows := w.RowViews() // pivoting permutes these headers only
	rhs := matrix.CloneVec(b)
	tol := o.Tolerance

	// Row scales.
	s := make([]float64, n)
	for i, row := range rows {
		s[i] = matrix.MaxAbs(row)
		if s[i] == 0 {
			return nil, fmt.Errorf("%w: row %d is zero", ErrSingular, i)
		}
	}

	// Forward elimination.
	var (
		i, k, p          int
		best, ratio, fac float64
		pivotRow, row    []float64
	)
	for k = 0; k < n-1; k++ {
		p, best = k, math.Abs(rows[k][k])/s[k]
		for i = k + 1; i < n; i++ {
			if ratio = math.Abs(rows[i][k]) / s[i]; ratio > best {
				p, best = i, ratio
			}
		}
		if best < tol {
			return nil, fmt.Errorf("%w: scaled pivot %.3g at step %d below tol %.3g", ErrSingular, best, k, tol)
		}
		if p != k {
			rows[k], rows[p] = rows[p], rows[k]
			rhs[k], rhs[p] = rhs[p], rhs[k]
			s[k], s[p] = s[p], s[k]
		}

		pivotRow = rows[k]
		for i = k + 1; i < n; i++ {
			row = rows[i]
			fac = row[k] / pivotRow[k]
			if fac == 0 {
				continue // column already clear in this row
			}
			matrix.AddScaled(row[k+1:], -fac, pivotRow[k+1:])
			rhs[i] -= fac * rhs[k]
		}
	}

	if last := math.Abs(rows[n-1][n-1]) / s[n-1]; last < tol {
		return nil, fmt.Errorf("%w: final scaled pivot %.3g below tol %.3g", ErrSingular, last, tol)
	}

	// Back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		row = rows[i]
		x[i] = (rhs[i] - matrix.Dot(row[i+1:], x[i+1:])) / row[i]
	}

	return x, nil
}

// Residual returns ‖A·x − b‖₂, the usual a-posteriori check of a solve.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return 0, fmt.Errorf("gauss.Residual: %w", err)
	}
	d, err := matrix.DenseOf(a)
	if err != nil {
		return 0, fmt.Errorf("gauss.Residual: %w", err)
	}
	ax, err := d.MulVec(x)
	if err != nil {
		return 0, fmt.Errorf("gauss.Residual: %w", err)
	}

	return matrix.Distance(ax, b), nil
}
