package nlsys_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/nlsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewton_CircleDiagonal intersects x²+y²=4 with x=y.
func TestNewton_CircleDiagonal(t *testing.T) {
	res, err := nlsys.Newton("x**2 + y**2 - 4; x - y", 1, 1, 1e-6)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt2, res.X, 1e-6)
	assert.InDelta(t, math.Sqrt2, res.Y, 1e-6)
	assert.InDelta(t, 0, res.F1, 1e-6)
	assert.InDelta(t, 0, res.F2, 1e-6)
	assert.Greater(t, res.Iterations, 0)
	assert.Less(t, res.Iterations, nlsys.DefaultMaxIterations)
}

// TestNewton_EqualityForm accepts LHS = RHS segments.
func TestNewton_EqualityForm(t *testing.T) {
	res, err := nlsys.Newton("x^2 + y = 4; y = sin(x)", 1, 1, 1e-9)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, res.X*res.X+res.Y, 1e-6)
	assert.InDelta(t, math.Sin(res.X), res.Y, 1e-6)
}

// TestNewton_Deterministic repeats bit-identically.
func TestNewton_Deterministic(t *testing.T) {
	a, err := nlsys.Newton("x**2 + y**2 - 4; x - y", 1, 1, 1e-6)
	require.NoError(t, err)
	b, err := nlsys.Newton("x**2 + y**2 - 4; x - y", 1, 1, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestNewton_Singular stops at the first step when J has a zero row.
func TestNewton_Singular(t *testing.T) {
	res, err := nlsys.Newton("x*y; x*y - 1", 0, 0, 1e-6)
	require.ErrorIs(t, err, nlsys.ErrSingularJacobian)
	assert.Equal(t, 1, res.Iterations)
}

// TestNewton_NotConverged returns the last iterate with its residuals.
func TestNewton_NotConverged(t *testing.T) {
	res, err := nlsys.Newton("x**2 + y**2 - 4; x - y", 1, 1, 1e-14, nlsys.WithMaxIterations(2))
	require.ErrorIs(t, err, nlsys.ErrNotConverged)
	assert.Equal(t, 2, res.Iterations)
	assert.NotEqual(t, 1.0, res.X)
	assert.InDelta(t, res.X*res.X+res.Y*res.Y-4, res.F1, 1e-12)
	assert.InDelta(t, res.X-res.Y, res.F2, 1e-12)
}

// TestNewton_InputErrors covers parsing, shape and evaluation failures.
func TestNewton_InputErrors(t *testing.T) {
	_, err := nlsys.Newton("x - y", 1, 1, 1e-6)
	require.ErrorIs(t, err, nlsys.ErrNotTwoEquations)

	_, err = nlsys.Newton("x; y; x + y", 1, 1, 1e-6)
	require.ErrorIs(t, err, nlsys.ErrNotTwoEquations)

	_, err = nlsys.Newton("x + z; y", 1, 1, 1e-6)
	require.ErrorIs(t, err, expr.ErrForbiddenIdentifier)

	_, err = nlsys.Newton(" ; ", 1, 1, 1e-6)
	require.ErrorIs(t, err, expr.ErrEmpty)

	_, err = nlsys.Newton("sqrt(x) - 1; y", -4, 0, 1e-6)
	require.ErrorIs(t, err, expr.ErrDomain)

	_, err = nlsys.Newton("x; y", 1, 1, 0)
	require.ErrorIs(t, err, nlsys.ErrBadTolerance)

	_, err = nlsys.Newton("x; y", math.NaN(), 1, 1e-6)
	require.ErrorIs(t, err, nlsys.ErrBadStart)

	three := func(x, y float64) ([]float64, error) { return []float64{x, y, x + y}, nil }
	_, err = nlsys.NewtonFunc(three, 1, 1, 1e-6)
	require.ErrorIs(t, err, nlsys.ErrNotTwoEquations)
}

// TestNewtonFunc_Closure runs on a plain Go closure with a custom step.
func TestNewtonFunc_Closure(t *testing.T) {
	F := func(x, y float64) ([]float64, error) {
		return []float64{x*x - 9, y - 2*x}, nil
	}
	res, err := nlsys.NewtonFunc(F, 1, 0, 1e-10, nlsys.WithStep(1e-7))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.X, 1e-8)
	assert.InDelta(t, 6.0, res.Y, 1e-8)
}

// TestOptions_Panics rejects nonsensical settings.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { nlsys.WithMaxIterations(0) })
	assert.Panics(t, func() { nlsys.WithStep(0) })
	assert.Panics(t, func() { nlsys.WithStep(math.Inf(1)) })
	assert.Panics(t, func() { nlsys.WithStep(math.NaN()) })
}
