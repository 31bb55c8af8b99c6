package linsys_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var dominant3 = [][]float64{
	{4, 1, 1, 9},
	{1, 3, 1, 7},
	{1, 1, 5, 9},
}

// TestSolve_Dominant3x3 converges to the exact solution (1.6, 1.4, 1.2).
func TestSolve_Dominant3x3(t *testing.T) {
	res, err := linsys.SolveRows(dominant3, 1e-9)
	require.NoError(t, err)

	require.Len(t, res.Solution, 3)
	assert.InDelta(t, 1.6, res.Solution[0], 1e-8)
	assert.InDelta(t, 1.4, res.Solution[1], 1e-8)
	assert.InDelta(t, 1.2, res.Solution[2], 1e-8)
	assert.Equal(t, 7.0, res.Norm)
	assert.False(t, res.Rearranged)
	assert.Equal(t, res.Iterations, len(res.Errors))
	assert.Less(t, res.Errors[len(res.Errors)-1], 1e-9)
}

// TestSolve_ErrorsDecrease checks the error history is strictly decreasing
// for a dominant matrix.
func TestSolve_ErrorsDecrease(t *testing.T) {
	res, err := linsys.SolveRows(dominant3, 1e-10)
	require.NoError(t, err)
	require.Greater(t, len(res.Errors), 2)
	for k := 1; k < len(res.Errors); k++ {
		assert.Less(t, res.Errors[k], res.Errors[k-1], "iteration %d", k)
	}
}

// TestSolve_Residual verifies A·x ≈ b on the returned solution.
func TestSolve_Residual(t *testing.T) {
	m, err := matrix.FromRows(dominant3)
	require.NoError(t, err)
	res, err := linsys.Solve(m, 1e-12)
	require.NoError(t, err)

	a, b, err := matrix.Split(m)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, res.Solution)
	require.NoError(t, err)
	diff, err := matrix.MaxAbsDiff(ax, b)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-10)
}

// TestSolve_InputUntouched makes sure the caller's matrix is not modified,
// even when rows get rearranged.
func TestSolve_InputUntouched(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 3, 4}, {3, 1, 4}})
	require.NoError(t, err)
	before := matrix.Format(m)

	_, err = linsys.Solve(m, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, before, matrix.Format(m))
}

// TestSolve_Rearranged swaps rows to reach dominance; the constants move
// with their rows.
func TestSolve_Rearranged(t *testing.T) {
	res, err := linsys.SolveRows([][]float64{{1, 3, 4}, {3, 1, 4}}, 1e-10)
	require.NoError(t, err)

	assert.True(t, res.Rearranged)
	assert.InDelta(t, 1.0, res.Solution[0], 1e-9)
	assert.InDelta(t, 1.0, res.Solution[1], 1e-9)
	assert.Equal(t, 4.0, res.Norm)

	row, err := res.System.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4}, row)
}

// TestSolve_NotDominant returns the warning without iterating.
func TestSolve_NotDominant(t *testing.T) {
	res, err := linsys.SolveRows([][]float64{{1, 1, 2}, {1, 1, 2}}, 1e-6)
	require.ErrorIs(t, err, linsys.ErrNotDiagonallyDominant)
	assert.Nil(t, res.Solution)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, 2.0, res.Norm)

	_, err = linsys.SolveRows([][]float64{{1, 3, 4}, {3, 1, 4}}, 1e-6, linsys.WithRearrange(false))
	require.ErrorIs(t, err, linsys.ErrNotDiagonallyDominant)
}

// TestSolve_IterationCap returns the partial result with ErrNotConverged.
func TestSolve_IterationCap(t *testing.T) {
	res, err := linsys.SolveRows(dominant3, 1e-12, linsys.WithMaxIterations(3))
	require.ErrorIs(t, err, linsys.ErrNotConverged)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.Errors, 3)
	assert.Len(t, res.Solution, 3)
}

// TestSolve_OneByOne solves 2·x = 4 in two sweeps.
func TestSolve_OneByOne(t *testing.T) {
	res, err := linsys.SolveRows([][]float64{{2, 4}}, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, res.Solution)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, []float64{2, 0}, res.Errors)
}

// TestSolve_BadInput covers accuracy and shape validation.
func TestSolve_BadInput(t *testing.T) {
	for _, acc := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := linsys.SolveRows(dominant3, acc)
		require.ErrorIs(t, err, linsys.ErrBadAccuracy, "accuracy %v", acc)
	}

	_, err := linsys.SolveRows([][]float64{{1, 2}, {3, 4}}, 1e-6)
	require.ErrorIs(t, err, matrix.ErrNotAugmented)

	_, err = linsys.SolveRows([][]float64{{1, 2, 3}, {4, 5}}, 1e-6)
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = linsys.Solve(nil, 1e-6)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsys.SolveText("4 1 x\n1 3 2", 1e-6)
	require.ErrorIs(t, err, matrix.ErrParse)

	_, err = linsys.SolveStrings([][]string{{"4", "1", "5"}, {"1", "", "4"}}, 1e-6)
	require.ErrorIs(t, err, matrix.ErrParse)
}

// TestSolve_Strings accepts textual cells.
func TestSolve_Strings(t *testing.T) {
	res, err := linsys.SolveStrings([][]string{{"4", "1", "5"}, {"1", "3", "4"}}, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Solution[0], 1e-9)
	assert.InDelta(t, 1.0, res.Solution[1], 1e-9)
}

// TestSolve_MatchesGonum compares Jacobi to a direct LU solve on random
// dominant systems.
func TestSolve_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{2, 3, 5, 8} {
		aug, err := matrix.RandomDominant(n, rng)
		require.NoError(t, err)
		res, err := linsys.Solve(aug, 1e-12, linsys.WithMaxIterations(1_000_000))
		require.NoError(t, err, "n=%d", n)

		a, b, err := matrix.Split(aug)
		require.NoError(t, err)
		data := make([]float64, 0, n*n)
		for i := 0; i < n; i++ {
			row, rerr := a.Row(i)
			require.NoError(t, rerr)
			data = append(data, row...)
		}
		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, b)))

		for i := 0; i < n; i++ {
			assert.InDelta(t, want.AtVec(i), res.Solution[i], 1e-6, "n=%d i=%d", n, i)
		}
	}
}

// TestIsDiagonallyDominant covers strictness and non-square input.
func TestIsDiagonallyDominant(t *testing.T) {
	strict, err := matrix.FromRows([][]float64{{3, 1}, {1, 3}})
	require.NoError(t, err)
	assert.True(t, linsys.IsDiagonallyDominant(strict))

	equal, err := matrix.FromRows([][]float64{{2, 2}, {1, 3}})
	require.NoError(t, err)
	assert.False(t, linsys.IsDiagonallyDominant(equal))

	rect, err := matrix.FromRows([][]float64{{3, 1, 1}})
	require.NoError(t, err)
	assert.False(t, linsys.IsDiagonallyDominant(rect))
}

// TestRearrange moves b entries together with their rows.
func TestRearrange(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 0}, {0, 1, 5}, {7, 0, 1}})
	require.NoError(t, err)
	b := []float64{10, 20, 30}

	moved, err := linsys.Rearrange(a, b)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "7 0 1\n1 2 0\n0 1 5", matrix.Format(a))
	assert.Equal(t, []float64{30, 10, 20}, b)

	_, err = linsys.Rearrange(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWithMaxIterations_Panics rejects a non-positive cap.
func TestWithMaxIterations_Panics(t *testing.T) {
	assert.Panics(t, func() { linsys.WithMaxIterations(0) })
}
