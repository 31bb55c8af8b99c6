// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// IsDiagonallyDominant reports strict row diagonal dominance of the square
// matrix a: |a[i][i]| > Σ_{j≠i} |a[i][j]| for every row i.
// Non-square input is never dominant.
//
// Complexity: O(n²).
func IsDiagonallyDominant(a matrix.Matrix) bool {
	if matrix.ValidateSquare(a) != nil {
		return false
	}
	n := a.Rows()
	for i := 0; i < n; i++ {
		var diag, off float64
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return false
			}
			if j == i {
				diag = math.Abs(v)
			} else {
				off += math.Abs(v)
			}
		}
		if diag <= off {
			return false
		}
	}

	return true
}

// Rearrange performs the single pass used before giving up on dominance:
// for each column i, left to right, the row among i..n-1 with the largest
// |a[r][i]| (first one on ties) is swapped into position i. The entries of b
// move with their rows. It reports whether any row moved.
//
// a must be square and len(b) == a.Rows().
// Complexity: O(n²).
func Rearrange(a *matrix.Dense, b []float64) (bool, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return false, err
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return false, err
	}
	n := a.Rows()
	moved := false
	for i := 0; i < n; i++ {
		best, bestAbs := i, -1.0
		for r := i; r < n; r++ {
			v, err := a.At(r, i)
			if err != nil {
				return moved, err
			}
			if math.Abs(v) > bestAbs {
				best, bestAbs = r, math.Abs(v)
			}
		}
		if best != i {
			if err := a.SwapRows(i, best); err != nil {
				return moved, err
			}
			b[i], b[best] = b[best], b[i]
			moved = true
		}
	}

	return moved, nil
}
