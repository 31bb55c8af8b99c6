// SPDX-License-Identifier: MIT

// Package nlsys solves a system of two nonlinear equations in x and y by
// Newton's method with a forward-difference Jacobian.
//
// Each step:
//
//	F      = [f1(x,y), f2(x,y)]
//	J[i][0] = (f_i(x+h, y) − f_i(x, y)) / h
//	J[i][1] = (f_i(x, y+h) − f_i(x, y)) / h
//	J·δ    = −F          (direct 2×2 solve)
//	(x, y) += δ          converged when ‖δ‖₂ < tol
//
// A singular (or non-finite) Jacobian stops the search with
// ErrSingularJacobian; exhausting the iteration cap returns the last iterate
// together with ErrNotConverged.
package nlsys
