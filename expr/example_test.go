package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/expr"
)

// ExampleUnary compiles a one-variable formula and evaluates it.
func ExampleUnary() {
	f, err := expr.Unary("x^2 - 2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := f(3)
	fmt.Println(v)
	// Output:
	// 7
}

// ExampleCompile_forbidden shows the allow-list gate at work.
func ExampleCompile_forbidden() {
	_, err := expr.Compile("x + os", "x")
	var pe *expr.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Ident, errors.Is(err, expr.ErrForbiddenIdentifier))
	}
	// Output:
	// os true
}
