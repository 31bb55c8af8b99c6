package expr_test

import (
	"testing"

	"github.com/katalvlaran/numlab/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompileSystem evaluates a two-equation system in equality form.
func TestCompileSystem(t *testing.T) {
	sys, err := expr.CompileSystem("x**2 + y**2 = 4; x - y", "x", "y")
	require.NoError(t, err)
	require.Equal(t, 2, sys.Len())
	assert.Equal(t, []string{"x", "y"}, sys.Vars())

	vals, err := sys.Eval(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0}, vals)

	F := sys.Func2()
	vals, err = F(2, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, vals)
}

// TestCompileSystem_Errors reports the failing segment.
func TestCompileSystem_Errors(t *testing.T) {
	_, err := expr.CompileSystem(" ; ", "x", "y")
	require.ErrorIs(t, err, expr.ErrEmpty)

	_, err = expr.CompileSystem("x + y; x + z", "x", "y")
	require.ErrorIs(t, err, expr.ErrForbiddenIdentifier)
	assert.Contains(t, err.Error(), "equation 2")
}

// TestSystem_EvalError propagates the first failing equation.
func TestSystem_EvalError(t *testing.T) {
	sys, err := expr.CompileSystem("x + y; sqrt(y)", "x", "y")
	require.NoError(t, err)
	_, err = sys.Eval(0, -1)
	require.ErrorIs(t, err, expr.ErrDomain)
	assert.Equal(t, "x + y", sys.Equation(0).String())
}
