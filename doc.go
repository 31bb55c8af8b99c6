// SPDX-License-Identifier: MIT

// Package numlab is a small laboratory of classic numerical methods driven
// by plain-text expressions in x (and y).
//
// What is inside?
//
//	expr/     safe expression compiler: allowed names, "=" sides, ^ power
//	matrix/   dense augmented matrices, parsing, norms and generators
//	linsys/   Jacobi iteration with diagonal-dominance check & rearrangement
//	roots/    bisection, secant and fixed-point iteration for f(x) = 0
//	nlsys/    Newton's method for two equations in x and y
//	quad/     rectangle, trapezoidal and Simpson rules with Runge doubling
//	session/  YAML-backed default parameters shared between runs
//	chart/    PNG/SVG graphs of f(x) and HTML convergence charts
//	report/   markdown reports rendered for the terminal
//
// The numlab command (cmd/numlab) ties everything together:
//
//	numlab linear -matrix "4 1 1 9\n1 3 1 7\n1 1 5 9" -accuracy 1e-6
//	numlab bisect -eq "x^2 = 2" -interval "1 2" -accuracy 1e-3
//	numlab newton -system "x^2 + y^2 = 4; x = y" -start "1 1" -tol 1e-6
//	numlab integrate -method simpson -eq "sin(x)" -interval "0 3.14159" -eps 1e-6
//
// Every package reports failures through sentinel errors wrapped with the
// failing operation, so callers branch with errors.Is.
package numlab
