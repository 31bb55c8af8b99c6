package linsys_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/linsys"
)

// ExampleSolveText solves a 3×3 diagonally dominant system.
func ExampleSolveText() {
	res, err := linsys.SolveText("4 1 1 9\n1 3 1 7\n1 1 5 9", 1e-9)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = %.4f %.4f %.4f, ||A|| = %g\n", res.Solution[0], res.Solution[1], res.Solution[2], res.Norm)
	// Output: x = 1.6000 1.4000 1.2000, ||A|| = 7
}

// ExampleSolveRows_notDominant shows the warning outcome.
func ExampleSolveRows_notDominant() {
	_, err := linsys.SolveRows([][]float64{{1, 1, 2}, {1, 1, 2}}, 1e-6)
	fmt.Println(errors.Is(err, linsys.ErrNotDiagonallyDominant))
	// Output: true
}
