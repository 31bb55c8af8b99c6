// SPDX-License-Identifier: MIT

package expr

import "fmt"

// Func1 is a real function of one variable that may fail.
type Func1 func(x float64) (float64, error)

// Func2 is a real function of two variables that may fail.
type Func2 func(x, y float64) (float64, error)

// VecFunc2 is a vector-valued function of two variables, F(x,y) = [f1, f2, ...].
type VecFunc2 func(x, y float64) ([]float64, error)

// Unary compiles src as a function of x.
func Unary(src string) (Func1, error) {
	e, err := Compile(src, VarX)
	if err != nil {
		return nil, err
	}

	return func(x float64) (float64, error) { return e.Eval(x) }, nil
}

// Binary compiles src as a function of x and y.
func Binary(src string) (Func2, error) {
	e, err := Compile(src, VarX, VarY)
	if err != nil {
		return nil, err
	}

	return func(x, y float64) (float64, error) { return e.Eval(x, y) }, nil
}

// System is an ordered list of equations over the same variables.
type System struct {
	vars []string
	eqs  []*Expression
}

// CompileSystem splits src on ";" and compiles each non-empty segment over
// vars. Each segment may be written as LHS = RHS.
//
// Errors: ErrEmpty (wrapped in *ParseError) when no segment remains, or the
// first segment's *ParseError prefixed by its 1-based position.
func CompileSystem(src string, vars ...string) (*System, error) {
	parts := SplitSystem(src)
	if len(parts) == 0 {
		return nil, &ParseError{Expr: src, Err: ErrEmpty}
	}
	sys := &System{vars: append([]string(nil), vars...), eqs: make([]*Expression, 0, len(parts))}
	for i, p := range parts {
		e, err := Compile(p, vars...)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i+1, err)
		}
		sys.eqs = append(sys.eqs, e)
	}

	return sys, nil
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.eqs) }

// Equation returns the i-th compiled equation.
func (s *System) Equation(i int) *Expression { return s.eqs[i] }

// Vars returns a copy of the declared variable names.
func (s *System) Vars() []string { return append([]string(nil), s.vars...) }

// Eval evaluates every equation at args, in order. The first failure aborts.
func (s *System) Eval(args ...float64) ([]float64, error) {
	out := make([]float64, len(s.eqs))
	for i, e := range s.eqs {
		v, err := e.Eval(args...)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Func2 adapts a two-variable system to VecFunc2.
func (s *System) Func2() VecFunc2 {
	return func(x, y float64) ([]float64, error) { return s.Eval(x, y) }
}
