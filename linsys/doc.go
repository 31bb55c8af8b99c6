// SPDX-License-Identifier: MIT

// Package linsys solves square linear systems A·x = b by Jacobi iteration.
//
// 🚀 How does it work?
//
//	Solve takes an augmented matrix [A|b] and an accuracy:
//	  1. split [A|b] into A (n×n) and b;
//	  2. check strict diagonal dominance |A[i][i]| > Σ_{j≠i} |A[i][j]|;
//	  3. if not dominant, pull for every column i the row with the largest
//	     |A[r][i]| (r ≥ i) into position i and check again;
//	  4. still not dominant → ErrNotDiagonallyDominant, nothing is computed;
//	  5. iterate from x = 0:
//	       x'[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//	     using ONLY the previous iterate (Jacobi, not Gauss–Seidel),
//	     until max_i |x'[i] − x[i]| < accuracy.
//
// ✨ What comes back?
//
//	Result carries the solution, the per-iteration error history, the
//	iteration count and ‖A‖∞. The loop is capped (DefaultMaxIterations,
//	WithMaxIterations); hitting the cap returns the partial Result together
//	with ErrNotConverged.
//
// ⚙️ Usage:
//
//	res, err := linsys.SolveText("4 1 1 9\n1 3 1 7\n1 1 5 9", 1e-6)
//	switch {
//	case errors.Is(err, linsys.ErrNotDiagonallyDominant):
//	  // warning: convergence not guaranteed, no solution computed
//	case err != nil:
//	  // bad input or ErrNotConverged
//	}
//	fmt.Println(res.Solution, res.Iterations, res.Norm)
package linsys
