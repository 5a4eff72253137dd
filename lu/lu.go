// SPDX-License-Identifier: MIT

// Package lu factors square matrices as A = L·U (Doolittle, no pivoting) and
// reuses the factors for many right-hand sides, inverses and determinants.
//
// Without pivoting the factorization exists only when every leading principal
// minor is non-zero (e.g. strictly diagonally dominant or symmetric positive
// definite A). Use gauss.Solve for general matrices.
package lu

import (
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// ErrSingular is returned when a diagonal entry of U is exactly zero.
// Wraps matrix.ErrSingular.
var ErrSingular = fmt.Errorf("lu: zero pivot: %w", matrix.ErrSingular)

// Factors holds the Doolittle factors of an n×n matrix.
// L is unit lower triangular, U is upper triangular.
type Factors struct {
	n    int
	l, u *matrix.Dense
}

// Factorize computes A = L·U.
// Blueprint:
//
//	Stage 1 (Validate): A non-nil and square.
//	Stage 2 (Prepare): private copy of A; L = I, U = 0.
//	Stage 3 (Execute): for each i, row i of U then column i of L;
//	                   a zero U[i,i] stops with ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a matrix.Matrix) (*Factors, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("lu.Factorize: %w", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("lu.Factorize: %w", err)
	}

	// Stage 2: Prepare L, U and row views
	w, err := matrix.DenseOf(a)
	if err != nil {
		return nil, fmt.Errorf("lu.Factorize: %w", err)
	}
	n := w.Rows()
	l, err := matrix.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("lu.Factorize: %w", err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("lu.Factorize: %w", err)
	}
	ar, lr, ur := w.RowViews(), l.RowViews(), u.RowViews()

	// Stage 3: Execute decomposition
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lr[i][k] * ur[k][j]
			}
			ur[i][j] = ar[i][j] - sum
		}
		if ur[i][i] == 0 {
			return nil, fmt.Errorf("lu.Factorize: U[%d,%d]: %w", i, i, ErrSingular)
		}
		// L's column i for rows j > i
		col := columnHead(ur, i)
		for j = i + 1; j < n; j++ {
			sum = matrix.Dot(lr[j][:i], col)
			lr[j][i] = (ar[j][i] - sum) / ur[i][i]
		}
	}

	return &Factors{n: n, l: l, u: u}, nil
}

// columnHead gathers U[0..i-1][i] into a fresh slice.
func columnHead(ur [][]float64, i int) []float64 {
	col := make([]float64, i)
	for k := 0; k < i; k++ {
		col[k] = ur[k][i]
	}

	return col
}

// L returns a copy of the unit lower-triangular factor.
func (f *Factors) L() *matrix.Dense { return f.l.Clone().(*matrix.Dense) }

// U returns a copy of the upper-triangular factor.
func (f *Factors) U() *matrix.Dense { return f.u.Clone().(*matrix.Dense) }

// Det returns det(A) = Π U[i,i].
func (f *Factors) Det() float64 {
	det := 1.0
	for _, d := range f.u.Diag() {
		det *= d
	}

	return det
}

// Solve solves A·x = b with the stored factors: L·y = b, then U·x = y.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf
// (b is not finite, or the substitution overflowed).
// Complexity: O(n²).
func (f *Factors) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, fmt.Errorf("lu.Factors.Solve: %w", err)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("lu.Factors.Solve: b: %w", err)
	}
	x := matrix.Zeros(f.n)
	f.solveInto(x, b)
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, fmt.Errorf("lu.Factors.Solve: x: %w", err)
	}

	return x, nil
}

// solveInto writes the solution of A·x = b into x; len(x) == len(b) == n.
func (f *Factors) solveInto(x, b []float64) {
	lr, ur := f.l.RowViews(), f.u.RowViews()
	// Forward substitution (L has a unit diagonal); y is stored in x.
	for i := 0; i < f.n; i++ {
		x[i] = b[i] - matrix.Dot(lr[i][:i], x[:i])
	}
	// Backward substitution.
	for i := f.n - 1; i >= 0; i-- {
		x[i] = (x[i] - matrix.Dot(ur[i][i+1:], x[i+1:])) / ur[i][i]
	}
}

// Inverse returns A⁻¹, solving A·x = eᵢ column by column.
// A column that overflows (tiny pivots) fails with matrix.ErrNaNInf.
// Complexity: O(n³).
func (f *Factors) Inverse() (*matrix.Dense, error) {
	inv, err := matrix.NewDense(f.n, f.n)
	if err != nil {
		return nil, fmt.Errorf("lu.Factors.Inverse: %w", err)
	}
	e := matrix.Zeros(f.n)
	x := matrix.Zeros(f.n)
	for col := 0; col < f.n; col++ {
		e[col] = 1
		f.solveInto(x, e)
		e[col] = 0
		if err = matrix.ValidateFinite(x); err != nil {
			return nil, fmt.Errorf("lu.Factors.Inverse: column %d: %w", col, err)
		}
		for i, v := range x {
			if err = inv.Set(i, col, v); err != nil {
				return nil, fmt.Errorf("lu.Factors.Inverse: %w", err)
			}
		}
	}

	return inv, nil
}

// Solve factors a and solves a·x = b in one call. Its signature matches
// broyden.LinearSolver.
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("lu.Solve: %w", err)
	}
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}

// Inverse factors a and returns its inverse.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular,
// matrix.ErrNaNInf.
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return f.Inverse()
}
