package chart_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

// TestFullRange widens the interval by a quarter on each side.
func TestFullRange(t *testing.T) {
	lo, hi := chart.FullRange(1, 3, chart.DefaultMargin)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 3.5, hi)

	lo, hi = chart.FullRange(3, 1, chart.DefaultMargin)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 3.5, hi)
}

// TestSample skips failed points and splits the curve there.
func TestSample(t *testing.T) {
	f, err := expr.Unary("1/x")
	require.NoError(t, err)

	segs := chart.Sample(f, -1, 1, 3)
	require.Len(t, segs, 2)
	assert.Equal(t, -1.0, segs[0][0].Y)
	assert.Equal(t, 1.0, segs[1][0].Y)

	sq, err := expr.Unary("x^2")
	require.NoError(t, err)
	segs = chart.Sample(sq, 0, 1, chart.DefaultPoints)
	require.Len(t, segs, 1)
	require.Len(t, segs[0], chart.DefaultPoints)
	assert.Equal(t, 1.0, segs[0][len(segs[0])-1].X)
}

// TestFunctionExpr renders a PNG with the interval highlighted.
func TestFunctionExpr(t *testing.T) {
	var buf bytes.Buffer
	err := chart.FunctionExpr(&buf, "x^2 - 2", 1, 2,
		chart.WithMarker(math.Sqrt2, 0, "root"),
		chart.WithSize(4*vg.Inch, 3*vg.Inch),
		chart.WithPoints(200))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

// TestFunction_SVGPartialDomain draws sqrt(x) although the left margin fails.
func TestFunction_SVGPartialDomain(t *testing.T) {
	f, err := expr.Unary("sqrt(x)")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.Function(&buf, f, 0, 1, chart.WithFormat("svg"), chart.WithTitle("sqrt")))
	assert.Contains(t, buf.String(), "<svg")
}

// TestFunction_Errors covers empty data and bad ranges.
func TestFunction_Errors(t *testing.T) {
	f, err := expr.Unary("log(x)")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, chart.Function(&buf, f, -3, -1), chart.ErrNoData)
	require.ErrorIs(t, chart.Function(&buf, f, 1, 2, chart.WithRange(2, 1)), chart.ErrBadRange)
	require.ErrorIs(t, chart.Function(&buf, f, 1, math.Inf(1)), chart.ErrBadRange)
	require.ErrorIs(t, chart.FunctionExpr(&buf, "cat(x)", 1, 2), expr.ErrForbiddenIdentifier)

	assert.Panics(t, func() { chart.WithPoints(1) })
	assert.Panics(t, func() { chart.WithSize(0, vg.Inch) })
}

// TestConvergence renders the Jacobi error history as HTML.
func TestConvergence(t *testing.T) {
	res, err := linsys.SolveText("4 1 1 9\n1 3 1 7\n1 1 5 9", 1e-6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.Convergence(&buf, "Jacobi convergence", res.Errors, res.Solution))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Jacobi convergence")

	require.ErrorIs(t, chart.Convergence(&buf, "empty", nil, nil), chart.ErrNoData)
}
