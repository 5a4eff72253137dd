// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsys/matrix"
)

// TestValidateSystem covers the NotNil → Square → VecLen priority.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	square := func(n int) matrix.Matrix {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		return m
	}
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a       matrix.Matrix
		b       []float64
		wantErr error
	}{
		{"nil matrix", nil, []float64{1}, matrix.ErrNilMatrix},
		{"typed nil", typedNil, []float64{1}, matrix.ErrNilMatrix},
		{"non-square wins over bad b", rect, nil, matrix.ErrDimensionMismatch},
		{"nil b", square(2), nil, matrix.ErrNilMatrix},
		{"short b", square(3), []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"ok", square(2), []float64{1, 2}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSystem(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite([]float64{1, 2}))
	err := matrix.ValidateFinite([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
}

func TestValidateNonZeroDiagonal(t *testing.T) {
	t.Parallel()

	ok, err := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonZeroDiagonal(ok))

	bad, err := matrix.NewDenseFrom([][]float64{{1, 5}, {5, 0}})
	require.NoError(t, err)
	err = matrix.ValidateNonZeroDiagonal(bad)
	require.ErrorIs(t, err, matrix.ErrZeroDiagonal)
	require.Contains(t, err.Error(), "A[1,1]")
}

func TestConvergenceError(t *testing.T) {
	t.Parallel()

	pkgSentinel := errors.New("pkg: not converged")
	var err error = &matrix.ConvergenceError{
		Op: "relax.Solve(jacobi)", Iterations: 7, Change: 0.5, Tolerance: 1e-6,
	}
	require.ErrorIs(t, err, matrix.ErrNotConverged)
	require.Contains(t, err.Error(), "after 7 iterations")

	err = &matrix.ConvergenceError{Op: "x", Err: pkgSentinel}
	require.ErrorIs(t, err, pkgSentinel)

	var ce *matrix.ConvergenceError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "x", ce.Op)
}
