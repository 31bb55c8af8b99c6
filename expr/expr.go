// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Default variable names of one- and two-variable formulas.
const (
	VarX = "x"
	VarY = "y"
)

// allowedModifiers are the binary arithmetic operators of the grammar.
var allowedModifiers = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "**": true,
}

// Expression is a compiled, immutable formula over a fixed list of variables.
type Expression struct {
	source     string   // formula as supplied
	normalized string   // formula after Normalize
	vars       []string // declared variables, in argument order
	eval       *govaluate.EvaluableExpression
}

// Compile parses src into an Expression over vars.
//
// Implementation:
//   - Stage 1: Normalize ("^" → "**", equality rewrite).
//   - Stage 2: allow-list gate over every identifier of the source.
//   - Stage 3: govaluate parse with the function table.
//   - Stage 4: token gate (arithmetic operators only, unary funcs only).
//
// Errors: *ParseError wrapping ErrEmpty, ErrForbiddenIdentifier, ErrSyntax
// or ErrUnsupportedOperator. Nothing is evaluated before all gates pass.
func Compile(src string, vars ...string) (*Expression, error) {
	norm, err := Normalize(src)
	if err != nil {
		return nil, err
	}

	allowed := allowList(vars)
	for _, id := range identifiers(norm) {
		if !allowed[id] {
			return nil, &ParseError{Expr: src, Ident: id, Err: ErrForbiddenIdentifier}
		}
	}

	ev, err := govaluate.NewEvaluableExpressionWithFunctions(norm, functionTable)
	if err != nil {
		return nil, &ParseError{Expr: src, Detail: err.Error(), Err: ErrSyntax}
	}
	if err = checkTokens(src, ev.Tokens(), allowed); err != nil {
		return nil, err
	}

	return &Expression{
		source:     src,
		normalized: norm,
		vars:       append([]string(nil), vars...),
		eval:       ev,
	}, nil
}

// MustCompile is Compile that panics on error. For tests and constants.
func MustCompile(src string, vars ...string) *Expression {
	e, err := Compile(src, vars...)
	if err != nil {
		panic(err)
	}

	return e
}

// allowList builds {vars ∪ pi ∪ function names}.
func allowList(vars []string) map[string]bool {
	allowed := make(map[string]bool, len(vars)+len(unaries)+1)
	for _, v := range vars {
		allowed[v] = true
	}
	allowed[ConstPi] = true
	for name := range unaries {
		allowed[name] = true
	}

	return allowed
}

// checkTokens enforces the arithmetic-only grammar over the parsed stream.
func checkTokens(src string, tokens []govaluate.ExpressionToken, allowed map[string]bool) error {
	for i, tok := range tokens {
		switch tok.Kind {
		case govaluate.NUMERIC, govaluate.CLAUSE, govaluate.CLAUSE_CLOSE:
		case govaluate.VARIABLE:
			name, _ := tok.Value.(string)
			if !allowed[name] || isFunction(name) {
				return &ParseError{Expr: src, Ident: name, Err: ErrForbiddenIdentifier}
			}
		case govaluate.FUNCTION:
			// A function must be applied to exactly one parenthesized argument.
			if i+2 >= len(tokens) || tokens[i+1].Kind != govaluate.CLAUSE || tokens[i+2].Kind == govaluate.CLAUSE_CLOSE {
				return &ParseError{Expr: src, Detail: "function needs one argument", Err: ErrSyntax}
			}
		case govaluate.MODIFIER:
			op, _ := tok.Value.(string)
			if !allowedModifiers[op] {
				return &ParseError{Expr: src, Detail: fmt.Sprintf("operator %q", op), Err: ErrUnsupportedOperator}
			}
		case govaluate.PREFIX:
			if op, _ := tok.Value.(string); op != "-" {
				return &ParseError{Expr: src, Detail: fmt.Sprintf("prefix %q", op), Err: ErrUnsupportedOperator}
			}
		default:
			return &ParseError{Expr: src, Detail: fmt.Sprintf("token %v %v", tok.Kind, tok.Value), Err: ErrUnsupportedOperator}
		}
	}

	return nil
}

func isFunction(name string) bool {
	_, ok := unaries[name]

	return ok
}

// Eval computes the formula at args, aligned with Vars().
//
// Errors: *EvaluationError wrapping ErrArity, ErrDomain (including any
// NaN/±Inf result) or the underlying evaluator failure.
func (e *Expression) Eval(args ...float64) (float64, error) {
	if len(args) != len(e.vars) {
		return 0, e.evalError(args, fmt.Errorf("got %d, want %d: %w", len(args), len(e.vars), ErrArity))
	}
	params := make(map[string]interface{}, len(args)+1)
	params[ConstPi] = math.Pi
	for i, name := range e.vars {
		params[name] = args[i]
	}

	raw, err := e.eval.Evaluate(params)
	if err != nil {
		return 0, e.evalError(args, err)
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, e.evalError(args, fmt.Errorf("non-numeric result %v: %w", raw, ErrDomain))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, e.evalError(args, fmt.Errorf("result %g: %w", v, ErrDomain))
	}

	return v, nil
}

func (e *Expression) evalError(args []float64, err error) error {
	return &EvaluationError{
		Expr:  e.normalized,
		Vars:  e.vars,
		Point: append([]float64(nil), args...),
		Err:   err,
	}
}

// Vars returns a copy of the declared variable names.
func (e *Expression) Vars() []string { return append([]string(nil), e.vars...) }

// Source returns the formula as supplied to Compile.
func (e *Expression) Source() string { return e.source }

// String returns the normalized formula.
func (e *Expression) String() string { return e.normalized }
