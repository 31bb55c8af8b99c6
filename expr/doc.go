// SPDX-License-Identifier: MIT

// Package expr turns user-typed algebraic formulas into real-valued Go
// functions of one or more named variables.
//
// 🚀 What does it accept?
//
//	A restricted arithmetic grammar, nothing more:
//	  • numbers, the constant pi
//	  • + - * / and exponentiation written as ** or ^ (right associative)
//	  • unary minus, unary plus and parentheses
//	  • sin, cos, tan, exp, log, sqrt, abs (one argument each)
//	  • the declared variables (x, or x and y)
//	  • an optional single "=" (LHS = RHS is rewritten to (LHS) - (RHS))
//
// ✨ Sandboxing:
//
//	Every identifier in the source is checked against an allow-list made of
//	the declared variables, pi and the supported function names BEFORE the
//	formula is handed to the govaluate parser. After parsing, the token
//	stream is checked a second time so that comparison, logical, bitwise,
//	ternary and string constructs are rejected as well. A formula that passes
//	both gates can only ever compute a float64.
//
// ⚙️ Usage:
//
//	f, err := expr.Unary("x^2 - 2")
//	if err != nil {
//	  // *expr.ParseError: ErrForbiddenIdentifier, ErrSyntax, ...
//	}
//	v, err := f(1.5) // *expr.EvaluationError on sqrt(-1), 1/0, log(0), ...
//
//	sys, err := expr.CompileSystem("x^2 + y^2 = 4; x - y", "x", "y")
//	vals, err := sys.Eval(1, 1) // [f1, f2]
//
// Expressions are immutable after Compile and safe for concurrent use.
package expr
