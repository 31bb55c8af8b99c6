// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// ConstPi is the only named constant of the grammar.
const ConstPi = "pi"

// unary describes one supported function: the math kernel and an optional
// domain guard that returns false for arguments outside the domain.
type unary struct {
	fn     func(float64) float64
	domain func(float64) bool
}

// unaries is the function allow-list. Keys are the spellings users type.
var unaries = map[string]unary{
	"sin":  {fn: math.Sin},
	"cos":  {fn: math.Cos},
	"tan":  {fn: math.Tan},
	"exp":  {fn: math.Exp},
	"log":  {fn: math.Log, domain: func(v float64) bool { return v > 0 }},
	"sqrt": {fn: math.Sqrt, domain: func(v float64) bool { return v >= 0 }},
	"abs":  {fn: math.Abs},
}

// FunctionNames returns the supported function names in a stable order.
func FunctionNames() []string {
	return []string{"sin", "cos", "tan", "exp", "log", "sqrt", "abs"}
}

// functionTable adapts unaries to the govaluate calling convention.
// Argument count is guaranteed by the token gate, so only type and domain
// are checked here.
var functionTable = buildFunctionTable()

func buildFunctionTable() map[string]govaluate.ExpressionFunction {
	table := make(map[string]govaluate.ExpressionFunction, len(unaries))
	for name, u := range unaries {
		table[name] = func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s: %w", name, ErrArity)
			}
			v, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("%s: non-numeric argument %v: %w", name, args[0], ErrDomain)
			}
			if u.domain != nil && !u.domain(v) {
				return nil, fmt.Errorf("%s(%g): %w", name, v, ErrDomain)
			}

			return u.fn(v), nil
		}
	}

	return table
}
