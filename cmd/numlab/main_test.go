package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numlab runs the command line and returns stdout and the log.
func numlab(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(append([]string{"-plain"}, args...), &out, log.New(&logs, "", 0))

	return out.String(), logs.String(), err
}

func TestLinear(t *testing.T) {
	out, _, err := numlab(t, "linear", "-matrix", `4 1 1 9\n1 3 1 7\n1 1 5 9`, "-accuracy", "1e-12")
	require.NoError(t, err)
	assert.Contains(t, out, "Jacobi")
	assert.Contains(t, out, "1.6")
	assert.Contains(t, out, "1.4")
	assert.Contains(t, out, "1.2")
}

func TestLinear_NotDominantAndChart(t *testing.T) {
	_, logs, err := numlab(t, "linear", "-matrix", `1 1 2\n1 1 2`, "-accuracy", "1e-6")
	require.ErrorIs(t, err, linsys.ErrNotDiagonallyDominant)
	assert.Contains(t, logs, "warning")

	dir := t.TempDir()
	file := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(file, []byte("3 1 4\n1 3 4\n"), 0o600))
	html := filepath.Join(dir, "conv.html")
	_, _, err = numlab(t, "linear", "-file", file, "-accuracy", "1e-9", "-chart", html)
	require.NoError(t, err)
	raw, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Jacobi convergence")
}

func TestRootCommands(t *testing.T) {
	out, _, err := numlab(t, "bisect", "-eq", "x^2 - 2", "-interval", "1 2", "-accuracy", "1e-3")
	require.NoError(t, err)
	assert.Contains(t, out, "1.414550781")

	out, _, err = numlab(t, "secant", "-eq", "x^2 = 2", "-interval", "1 2", "-accuracy", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, out, "1.41421356")

	out, logs, err := numlab(t, "iterate", "-eq", "x^2", "-interval", "0 2", "-accuracy", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, logs, "warning")
	assert.Contains(t, out, "fixed point")

	_, _, err = numlab(t, "secant", "-eq", "x^2 - 2", "-interval", "1 2", "-accuracy", "1e-6", "-max-iter", "0")
	require.ErrorIs(t, err, errUsage)
}

func TestNewtonAndIntegrate(t *testing.T) {
	out, _, err := numlab(t, "newton", "-system", "x^2 + y^2 = 4; x = y", "-start", "1 1", "-tol", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, out, "1.414213562")

	out, _, err = numlab(t, "integrate", "-method", "simpson", "-eq", "x^2", "-interval", "0 1", "-eps", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, out, "0.3333333333")
}

func TestSessionFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numlab.yaml")

	_, _, err := numlab(t, "-session", path, "session", "set",
		"-interval", "1 2", "-accuracy", "0.001", "-eq", "x^2 - 2", "-system", "x^2 + y^2 = 4; x = y")
	require.NoError(t, err)

	out, _, err := numlab(t, "-session", path, "bisect")
	require.NoError(t, err)
	assert.Contains(t, out, "1.414550781")

	out, _, err = numlab(t, "-session", path, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "accuracy: 0.001")

	_, _, err = numlab(t, "-session", path, "genmatrix", "-n", "3", "-seed", "5", "-save")
	require.NoError(t, err)
	s, err := session.LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Matrix)

	_, _, err = numlab(t, "-session", path, "linear")
	require.NoError(t, err)

	_, _, err = numlab(t, "-session", path, "session", "clear")
	require.NoError(t, err)
	out, _, err = numlab(t, "-session", path, "session", "show")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)

	_, _, err = numlab(t, "-session", path, "bisect")
	require.ErrorIs(t, err, session.ErrUnset)
}

func TestGenMatrix_Seeded(t *testing.T) {
	a, _, err := numlab(t, "genmatrix", "-n", "4", "-seed", "42")
	require.NoError(t, err)
	b, _, err := numlab(t, "genmatrix", "-n", "4", "-seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimSpace(a), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Len(t, strings.Fields(l), 5)
	}
}

func TestPlot(t *testing.T) {
	png := filepath.Join(t.TempDir(), "g.png")
	out, _, err := numlab(t, "plot", "-eq", "sin(x)", "-interval", "0 3", "-o", png, "-points", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	raw, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestUsageErrors(t *testing.T) {
	_, _, err := numlab(t)
	require.ErrorIs(t, err, errUsage)

	_, _, err = numlab(t, "frobnicate")
	require.ErrorIs(t, err, errUsage)

	_, _, err = numlab(t, "session", "show")
	require.NoError(t, err)

	_, _, err = numlab(t, "session", "clear")
	require.ErrorIs(t, err, errUsage)
}
