// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eqsys/matrix"
)

// ExampleDense_MulVec builds a small matrix from a literal and multiplies it
// by a vector.
func ExampleDense_MulVec() {
	a, err := matrix.NewDenseFrom([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	y, err := a.MulVec([]float64{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	fmt.Print(a)

	// Output:
	// [3 2 3]
	// [4, -1, 0]
	// [-1, 4, -1]
	// [0, -1, 4]
}

// ExampleValidateSystem shows the shape guard every solver runs first.
func ExampleValidateSystem() {
	a, _ := matrix.NewDense(2, 2)
	err := matrix.ValidateSystem(a, []float64{1, 2, 3})
	fmt.Println(err)

	// Output:
	// ValidateSystem: ValidateVecLen: len 3, want 2: matrix: dimension mismatch
}
