// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by ingestion, norms and the
// iterative solvers.
package matrix

// Matrix is a rectangular grid of finite float64 values, usually an
// augmented system [A|b] or its coefficient block A.
//
// Accessors report ErrOutOfRange instead of panicking. Row hands out a
// copy, so solvers may cache rows without aliasing the storage.
type Matrix interface {
	Rows() int
	Cols() int

	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	// Row returns a copy of row i.
	Row(i int) ([]float64, error)

	// Clone returns a deep copy sharing no storage.
	Clone() Matrix
}
