// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// Solve iterates the chosen relaxation method on A·x = b until the relative
// change between sweeps drops below the tolerance.
//
// Convergence measure per sweep:
//
//	change = ‖x_new − x_old‖₂ / ‖x_new‖₂   (‖x_new − x_old‖₂ when ‖x_new‖₂ = 0)
//
// Errors:
//   - ErrOptionViolation, ErrUnknownMethod.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (A, b or the initial guess).
//   - matrix.ErrNaNInf — b holds NaN or ±Inf.
//   - ErrZeroDiagonal — checked before the first sweep.
//   - *matrix.ConvergenceError wrapping ErrNotConverged — budget exhausted.
//
// Complexity: O(MaxIter·n²) time, O(n²) memory for the private copy of A.
func Solve(a matrix.Matrix, b []float64, method Method, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if method != Jacobi && method != GaussSeidel {
		return nil, fmt.Errorf("relax.Solve: %w: %d", ErrUnknownMethod, int(method))
	}
	if err = matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("relax.Solve: %w", err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("relax.Solve: %w", err)
	}
	n := a.Rows()
	if o.InitialGuess != nil {
		if err = matrix.ValidateVecLen(o.InitialGuess, n); err != nil {
			return nil, fmt.Errorf("relax.Solve: initial guess: %w", err)
		}
	}

	d, err := matrix.DenseOf(a)
	if err != nil {
		return nil, fmt.Errorf("relax.Solve: %w", err)
	}
	if err = matrix.ValidateNonZeroDiagonal(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZeroDiagonal, err)
	}

	x := matrix.Zeros(n)
	if o.InitialGuess != nil {
		copy(x, o.InitialGuess)
	}

	s := &sweeper{rows: d.RowViews(), b: b, x: x, prev: matrix.Zeros(n)}
	var step func() float64
	switch method {
	case Jacobi:
		s.invDiag = d.Diag()
		for i, v := range s.invDiag {
			s.invDiag[i] = 1 / v
		}
		step = s.jacobi
	default:
		s.omega = o.Omega
		step = s.gaussSeidel
	}

	var change float64
	for sweep := 1; sweep <= o.MaxIter; sweep++ {
		change = step()
		o.OnSweep(sweep, s.x, change)
		if change < o.Tolerance {
			return s.x, nil
		}
	}

	return nil, &matrix.ConvergenceError{
		Op:         "relax.Solve(" + method.String() + ")",
		Iterations: o.MaxIter,
		Change:     change,
		Tolerance:  o.Tolerance,
		Err:        ErrNotConverged,
	}
}

// sweeper owns the pre-sized buffers of one Solve call.
type sweeper struct {
	rows    [][]float64
	b       []float64
	x, prev []float64 // current and previous iterate
	invDiag []float64 // 1/A[i,i], Jacobi only
	omega   float64
}

// jacobi performs one synchronous sweep. The new iterate is assembled in
// prev, then the two buffers trade places.
func (s *sweeper) jacobi() float64 {
	next := s.prev
	for i, row := range s.rows {
		next[i] = s.b[i] - matrix.Dot(row[:i], s.x[:i]) - matrix.Dot(row[i+1:], s.x[i+1:])
	}
	matrix.MulElem(next, next, s.invDiag)
	s.x, s.prev = next, s.x

	return relativeChange(s.x, s.prev)
}

// gaussSeidel performs one in-place sweep in increasing row order,
// blending each Gauss-Seidel value with the previous one by ω.
func (s *sweeper) gaussSeidel() float64 {
	copy(s.prev, s.x)
	var sigma, xgs float64
	for i, row := range s.rows {
		sigma = matrix.Dot(row[:i], s.x[:i]) + matrix.Dot(row[i+1:], s.x[i+1:])
		xgs = (s.b[i] - sigma) / row[i]
		s.x[i] = s.omega*xgs + (1-s.omega)*s.prev[i]
	}

	return relativeChange(s.x, s.prev)
}

func relativeChange(next, prev []float64) float64 {
	diff := matrix.Distance(next, prev)
	if nrm := matrix.Norm(next); nrm > 0 {
		return diff / nrm
	}

	return diff
}
