// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage and ingestion layer behind the
// linear-system solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set (errors, never panics)
//     and a finite-only numeric policy.
//   - Augmented-matrix ingestion [A|b] from numeric rows, string rows or
//     newline/whitespace text, and splitting into (A, b).
//   - Small kernels used by iterative solvers: MatVec, NormInf, MaxAbsDiff.
//   - A seeded generator of random (optionally diagonally dominant) systems.
//
// Every public function validates its inputs and returns the package
// sentinels from errors.go, wrapped with an operation tag.
package matrix
