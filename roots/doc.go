// SPDX-License-Identifier: MIT

// Package roots finds a root of a single-variable equation f(x) = 0.
//
// 🚀 Methods:
//
//	Bisection  - halves [a,b] keeping the half where f changes sign relative
//	             to f(a); stops once |b−a| ≤ accuracy and returns the midpoint.
//	Secant     - x₂ = x₁ − f(x₁)·(x₁−x₀)/(f(x₁)−f(x₀)) from two starting points.
//	FixedPoint - iterates x = φ(x) from the midpoint of [a,b].
//
// Every method comes in two forms: one taking an equation string (compiled by
// package expr with x as the only variable, "LHS = RHS" allowed) and a *Func
// variant taking an expr.Func1 directly.
//
// ✨ Outcomes:
//
//	Result{Root, FX, Iterations, Warning}
//	  - success: err == nil;
//	  - ErrNotConverged / ErrFlatSecant / ErrLeftInterval: Root and FX are
//	    zero, Iterations holds the count reached;
//	  - *expr.EvaluationError: f failed at some point; Iterations as above.
//
// Bisection performs no sign-change precondition by default; a bracket
// without a root converges towards one endpoint region. WithSignCheck(true)
// turns that into ErrNoSignChange.
package roots
