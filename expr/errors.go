// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"strings"
)

// Parse-stage sentinels. They are always reported wrapped in *ParseError.
var (
	// ErrEmpty is returned for a blank formula or a blank side of "=".
	ErrEmpty = errors.New("expr: empty expression")

	// ErrForbiddenIdentifier marks an identifier outside the allow-list.
	ErrForbiddenIdentifier = errors.New("expr: forbidden identifier")

	// ErrSyntax marks a formula the grammar cannot parse.
	ErrSyntax = errors.New("expr: malformed expression")

	// ErrUnsupportedOperator marks a construct outside the arithmetic grammar
	// (comparison, logical, bitwise, ternary, strings, accessors, commas).
	ErrUnsupportedOperator = errors.New("expr: unsupported operator")
)

// Evaluation-stage sentinels.
var (
	// ErrEvaluation is matched by every *EvaluationError.
	ErrEvaluation = errors.New("expr: evaluation failed")

	// ErrDomain marks a math domain violation: sqrt of a negative, log of a
	// non-positive, division by zero, or any non-finite intermediate result.
	ErrDomain = errors.New("expr: domain error")

	// ErrArity is returned when Eval gets a different number of arguments
	// than the expression declares variables.
	ErrArity = errors.New("expr: wrong number of arguments")
)

// ParseError reports why a formula was refused before any evaluation.
type ParseError struct {
	Expr   string // formula as supplied by the caller
	Ident  string // offending identifier, if any
	Detail string // parser message, if any
	Err    error  // one of the parse-stage sentinels
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Ident != "" {
		fmt.Fprintf(&b, " %q", e.Ident)
	}
	fmt.Fprintf(&b, " in %q", e.Expr)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvaluationError carries the point at which a compiled formula failed.
type EvaluationError struct {
	Expr  string    // normalized formula
	Vars  []string  // variable names, aligned with Point
	Point []float64 // argument values of the failing call
	Err   error
}

func (e *EvaluationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expr: evaluating %q at ", e.Expr)
	for i, v := range e.Point {
		if i > 0 {
			b.WriteString(", ")
		}
		name := "?"
		if i < len(e.Vars) {
			name = e.Vars[i]
		}
		fmt.Fprintf(&b, "%s=%g", name, v)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	return b.String()
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrEvaluation) match any evaluation failure.
func (e *EvaluationError) Is(target error) bool { return target == ErrEvaluation }
