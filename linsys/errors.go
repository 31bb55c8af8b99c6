// SPDX-License-Identifier: MIT

package linsys

import "errors"

var (
	// ErrNotDiagonallyDominant is the recoverable warning outcome: the
	// coefficient matrix is not strictly diagonally dominant even after row
	// rearrangement, so Jacobi convergence is not guaranteed and no
	// iteration is attempted.
	ErrNotDiagonallyDominant = errors.New("linsys: matrix is not diagonally dominant")

	// ErrNotConverged is returned with the partial Result when the
	// iteration cap is reached before the accuracy is met.
	ErrNotConverged = errors.New("linsys: iteration limit reached")

	// ErrBadAccuracy rejects non-positive or non-finite accuracy values.
	ErrBadAccuracy = errors.New("linsys: accuracy must be finite and > 0")
)
