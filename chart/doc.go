// SPDX-License-Identifier: MIT

// Package chart draws pictures of numerical results.
//
//	Function     graph of f(x) with the working interval [a,b] highlighted,
//	             rendered by gonum/plot as PNG (or SVG/PDF/EPS).
//	Convergence  per-iteration error and solution components of a linear
//	             solve, rendered by go-echarts as a standalone HTML page.
//
// Both write to an io.Writer; callers decide whether that is a file, an
// HTTP response or a buffer.
package chart
