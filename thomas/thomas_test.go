// SPDX-License-Identifier: MIT
package thomas_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eqsys/gauss"
	"github.com/katalvlaran/eqsys/matrix"
	"github.com/katalvlaran/eqsys/thomas"
)

func TestSolve_Reference3x3(t *testing.T) {
	t.Parallel()

	e := []float64{0, 1, 1}
	f := []float64{2, 2, 2}
	g := []float64{1, 1, 0}
	b := []float64{3, 4, 3}

	x, err := thomas.Solve(e, f, g, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-14)

	// Same system through the dense solver.
	a, err := thomas.Bands{Sub: e, Main: f, Super: g}.ToDense()
	require.NoError(t, err)
	want, err := gauss.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)
}

func TestSolve_SingleUnknown(t *testing.T) {
	t.Parallel()

	x, err := thomas.Solve([]float64{0}, []float64{2}, []float64{0}, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, x)
}

func TestSolve_AgreesWithGauss(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	for _, n := range []int{2, 7, 40} {
		bd := thomas.Bands{Sub: make([]float64, n), Main: make([]float64, n), Super: make([]float64, n)}
		b := make([]float64, n)
		for i := 0; i < n; i++ {
			if i > 0 {
				bd.Sub[i] = rng.Float64()*2 - 1
			}
			if i < n-1 {
				bd.Super[i] = rng.Float64()*2 - 1
			}
			bd.Main[i] = 2.5 + rng.Float64()
			b[i] = rng.Float64()*20 - 10
		}

		x, err := thomas.SolveBands(bd, b)
		require.NoError(t, err)

		a, err := bd.ToDense()
		require.NoError(t, err)
		want, err := gauss.Solve(a, b, gauss.WithTolerance(1e-12))
		require.NoError(t, err)
		require.True(t, floats.EqualApprox(x, want, 1e-10), "n=%d\nthomas=%v\ngauss=%v", n, x, want)
	}
}

func TestSolve_ZeroPivot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		e, f, g, b []float64
		msg        string
	}{
		{
			name: "first pivot",
			e:    []float64{0, 1}, f: []float64{0, 1}, g: []float64{1, 0}, b: []float64{1, 1},
			msg: "at k=0",
		},
		{
			name: "last row",
			e:    []float64{0, 1}, f: []float64{1, 1}, g: []float64{1, 0}, b: []float64{1, 1},
			msg: "last row",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := thomas.Solve(tc.e, tc.f, tc.g, tc.b)
			require.ErrorIs(t, err, thomas.ErrZeroPivot)
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestSolve_LengthMismatch(t *testing.T) {
	t.Parallel()

	one := []float64{1}
	two := []float64{1, 1}
	cases := [][4][]float64{
		{nil, nil, nil, nil},
		{one, two, two, two},
		{two, two, one, two},
		{two, two, two, one},
	}
	for i, c := range cases {
		_, err := thomas.Solve(c[0], c[1], c[2], c[3])
		require.Truef(t, errors.Is(err, thomas.ErrLengthMismatch), "case %d: %v", i, err)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

func TestSolve_NonFiniteInput(t *testing.T) {
	t.Parallel()

	ok := func() [4][]float64 {
		return [4][]float64{{0, 1}, {2, 2}, {1, 0}, {3, 3}}
	}
	for i, name := range []string{"e", "f", "g", "b"} {
		in := ok()
		in[i][1] = math.NaN()
		if i == 2 {
			in[i][1] = math.Inf(1)
		}
		_, err := thomas.Solve(in[0], in[1], in[2], in[3])
		require.ErrorIs(t, err, matrix.ErrNaNInf, name)
		require.Contains(t, err.Error(), name+":")
	}
}

func TestSolve_InputsNotMutated(t *testing.T) {
	t.Parallel()

	e := []float64{0, -1, -1, -1}
	f := []float64{4, 4, 4, 4}
	g := []float64{-1, -1, -1, 0}
	b := []float64{1, 2, 3, 4}

	_, err := thomas.Solve(e, f, g, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -1, -1}, e)
	assert.Equal(t, []float64{4, 4, 4, 4}, f)
	assert.Equal(t, []float64{-1, -1, -1, 0}, g)
	assert.Equal(t, []float64{1, 2, 3, 4}, b)
}

func TestBandsOf(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom([][]float64{
		{2, 1, 0},
		{1, 2, 1},
		{0, 1, 2},
	})
	require.NoError(t, err)

	bd, err := thomas.BandsOf(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, bd.Sub)
	assert.Equal(t, []float64{2, 2, 2}, bd.Main)
	assert.Equal(t, []float64{1, 1, 0}, bd.Super)
	assert.Equal(t, 3, bd.Len())

	back, err := bd.ToDense()
	require.NoError(t, err)
	assert.Equal(t, a.String(), back.String())

	full, err := matrix.NewDenseFrom([][]float64{{1, 0, 5}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	_, err = thomas.BandsOf(full)
	require.ErrorIs(t, err, thomas.ErrNotTridiagonal)
	require.Contains(t, err.Error(), "A[0,2]")

	_, err = thomas.BandsOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBands_ToDenseLengthMismatch(t *testing.T) {
	t.Parallel()

	bd := thomas.Bands{Sub: []float64{0}, Main: []float64{1, 1}, Super: []float64{1, 0}}
	assert.Equal(t, -1, bd.Len())
	_, err := bd.ToDense()
	require.ErrorIs(t, err, thomas.ErrLengthMismatch)
}

func TestSolveMatrix(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	})
	require.NoError(t, err)

	x, err := thomas.SolveMatrix(a, []float64{15, 10, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{275.0 / 56, 260.0 / 56, 205.0 / 56}, x, 1e-12)

	_, err = thomas.SolveMatrix(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
