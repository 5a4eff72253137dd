// SPDX-License-Identifier: MIT

// Package thomas defines the band representation and error definitions
// for the tridiagonal solver.
package thomas

import (
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// Sentinel errors for the Thomas algorithm.
var (
	// ErrZeroPivot is returned when an elimination pivot f[k] is exactly zero.
	// The algorithm performs no pivoting and cannot recover. Wraps matrix.ErrSingular.
	ErrZeroPivot = fmt.Errorf("thomas: zero pivot: %w", matrix.ErrSingular)

	// ErrLengthMismatch is returned when e, f, g and b differ in length or are empty.
	// Wraps matrix.ErrDimensionMismatch.
	ErrLengthMismatch = fmt.Errorf("thomas: band lengths differ: %w", matrix.ErrDimensionMismatch)

	// ErrNotTridiagonal is returned by BandsOf when a non-zero entry lies
	// outside the three central diagonals.
	ErrNotTridiagonal = fmt.Errorf("thomas: matrix is not tridiagonal")
)

// Bands stores a tridiagonal n×n matrix in O(n) memory.
//
//   - Sub[k]   = A[k,k-1]  (Sub[0] unused)
//   - Main[k]  = A[k,k]
//   - Super[k] = A[k,k+1]  (Super[n-1] unused)
type Bands struct {
	Sub, Main, Super []float64
}

// Len returns n when all three bands agree, or -1 otherwise.
func (bd Bands) Len() int {
	n := len(bd.Main)
	if len(bd.Sub) != n || len(bd.Super) != n {
		return -1
	}

	return n
}

// ToDense expands the bands into the equivalent dense n×n matrix.
// The unused slots Sub[0] and Super[n-1] are ignored.
func (bd Bands) ToDense() (*matrix.Dense, error) {
	n := bd.Len()
	if n <= 0 {
		return nil, fmt.Errorf("thomas.Bands.ToDense: %w", ErrLengthMismatch)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("thomas.Bands.ToDense: %w", err)
	}
	rows := d.RowViews()
	for k := 0; k < n; k++ {
		rows[k][k] = bd.Main[k]
		if k > 0 {
			rows[k][k-1] = bd.Sub[k]
		}
		if k < n-1 {
			rows[k][k+1] = bd.Super[k]
		}
	}

	return d, nil
}

// BandsOf extracts the three diagonals of a square matrix.
// It fails with ErrNotTridiagonal if any entry with |i-j| > 1 is non-zero.
func BandsOf(a matrix.Matrix) (Bands, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return Bands{}, fmt.Errorf("thomas.BandsOf: %w", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return Bands{}, fmt.Errorf("thomas.BandsOf: %w", err)
	}
	d, err := matrix.DenseOf(a)
	if err != nil {
		return Bands{}, fmt.Errorf("thomas.BandsOf: %w", err)
	}

	n := d.Rows()
	bd := Bands{Sub: make([]float64, n), Main: make([]float64, n), Super: make([]float64, n)}
	for i, row := range d.RowViews() {
		for j, v := range row {
			switch {
			case j == i:
				bd.Main[i] = v
			case j == i-1:
				bd.Sub[i] = v
			case j == i+1:
				bd.Super[i] = v
			case v != 0:
				return Bands{}, fmt.Errorf("%w: A[%d,%d] = %g", ErrNotTridiagonal, i, j, v)
			}
		}
	}

	return bd, nil
}
