// SPDX-License-Identifier: MIT

package thomas

import (
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// Solve solves the tridiagonal system given by its bands e (sub), f (main),
// g (super) and the right-hand side b, all of length n.
//
// Algorithm Outline:
//  1. Forward sweep, k = 1..n-1:
//     fail if f[k-1] == 0;
//     factor = e[k]/f[k-1]; f[k] -= factor*g[k-1]; b[k] -= factor*b[k-1].
//  2. Fail if f[n-1] == 0.
//  3. Back substitution: x[n-1] = b[n-1]/f[n-1];
//     x[k] = (b[k] − g[k]*x[k+1]) / f[k].
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) (working copies of f and b, plus x)
//
// Errors:
//   - ErrLengthMismatch — bands/b empty or of different lengths.
//   - ErrZeroPivot      — a zero pivot during the sweep or in the last row.
//   - matrix.ErrNaNInf  — a NaN or ±Inf entry in e, f, g or b.
//
// None of the inputs is mutated.
func Solve(e, f, g, b []float64) ([]float64, error) {
	n := len(f)
	if n == 0 || len(e) != n || len(g) != n || len(b) != n {
		return nil, fmt.Errorf("thomas.Solve: len(e)=%d len(f)=%d len(g)=%d len(b)=%d: %w",
			len(e), len(f), len(g), len(b), ErrLengthMismatch)
	}
	for _, v := range []struct {
		name string
		x    []float64
	}{{"e", e}, {"f", f}, {"g", g}, {"b", b}} {
		if err := matrix.ValidateFinite(v.x); err != nil {
			return nil, fmt.Errorf("thomas.Solve: %s: %w", v.name, err)
		}
	}

	// e and g are read-only during the sweep; only f and b are updated.
	fw := matrix.CloneVec(f)
	bw := matrix.CloneVec(b)

	var factor float64
	for k := 1; k < n; k++ {
		if fw[k-1] == 0 {
			return nil, fmt.Errorf("%w at k=%d", ErrZeroPivot, k-1)
		}
		factor = e[k] / fw[k-1]
		fw[k] -= factor * g[k-1]
		bw[k] -= factor * bw[k-1]
	}
	if fw[n-1] == 0 {
		return nil, fmt.Errorf("%w in last row (singular system)", ErrZeroPivot)
	}

	x := matrix.Zeros(n)
	x[n-1] = bw[n-1] / fw[n-1]
	for k := n - 2; k >= 0; k-- {
		x[k] = (bw[k] - g[k]*x[k+1]) / fw[k]
	}

	return x, nil
}

// SolveBands is Solve for a Bands value.
func SolveBands(bd Bands, b []float64) ([]float64, error) {
	return Solve(bd.Sub, bd.Main, bd.Super, b)
}

// SolveMatrix extracts the bands of a square tridiagonal matrix and solves
// a·x = b in O(n) after the O(n²) extraction.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNotTridiagonal,
//     plus everything Solve returns.
func SolveMatrix(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("thomas.SolveMatrix: %w", err)
	}
	bd, err := BandsOf(a)
	if err != nil {
		return nil, err
	}

	return SolveBands(bd, b)
}
