package session_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T) *session.Session {
	t.Helper()
	s := &session.Session{}
	require.NoError(t, s.SetInterval(1, 2))
	require.NoError(t, s.SetAccuracy(1e-6))
	require.NoError(t, s.SetMatrix("4 1 1 9\n1 3 1 7\n\n1 1 5 9\n"))
	require.NoError(t, s.SetEquation("x^2 = 2"))
	require.NoError(t, s.SetSystem("x^2 + y^2 = 4; x = y"))

	return s
}

// TestSession_SetRequire stores validated values and reads them back.
func TestSession_SetRequire(t *testing.T) {
	s := filled(t)

	a, b, err := s.RequireInterval()
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 2.0, b)

	acc, err := s.RequireAccuracy()
	require.NoError(t, err)
	assert.Equal(t, 1e-6, acc)

	m, err := s.RequireMatrix()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, "4 1 1 9\n1 3 1 7\n1 1 5 9", s.Matrix)

	eq, err := s.RequireEquation()
	require.NoError(t, err)
	assert.Equal(t, "x^2 = 2", eq)

	sys, err := s.RequireSystem()
	require.NoError(t, err)
	assert.Equal(t, "x^2 + y^2 = 4; x = y", sys)
}

// TestSession_Unset reports every missing parameter.
func TestSession_Unset(t *testing.T) {
	var s session.Session
	_, _, err := s.RequireInterval()
	require.ErrorIs(t, err, session.ErrUnset)
	_, err = s.RequireAccuracy()
	require.ErrorIs(t, err, session.ErrUnset)
	_, err = s.RequireMatrix()
	require.ErrorIs(t, err, session.ErrUnset)
	_, err = s.RequireEquation()
	require.ErrorIs(t, err, session.ErrUnset)
	_, err = s.RequireSystem()
	require.ErrorIs(t, err, session.ErrUnset)
}

// TestSession_RejectsInvalid leaves the previous value in place.
func TestSession_RejectsInvalid(t *testing.T) {
	s := filled(t)

	require.ErrorIs(t, s.SetInterval(1, 1), session.ErrInvalid)
	require.ErrorIs(t, s.SetInterval(math.NaN(), 1), session.ErrInvalid)
	require.ErrorIs(t, s.SetAccuracy(0), session.ErrInvalid)
	require.ErrorIs(t, s.SetAccuracy(math.Inf(1)), session.ErrInvalid)

	err := s.SetMatrix("1 2\n3 4")
	require.ErrorIs(t, err, session.ErrInvalid)
	require.ErrorIs(t, err, matrix.ErrNotAugmented)

	err = s.SetEquation("__import__(x)")
	require.ErrorIs(t, err, session.ErrInvalid)
	require.ErrorIs(t, err, expr.ErrForbiddenIdentifier)

	require.ErrorIs(t, s.SetSystem("x + z; y"), expr.ErrForbiddenIdentifier)

	assert.Equal(t, "x^2 = 2", s.Equation)
	assert.Equal(t, 1e-6, s.Accuracy)
	assert.Equal(t, session.Interval{A: 1, B: 2}, *s.Interval)
}

// TestSession_Clear resets everything.
func TestSession_Clear(t *testing.T) {
	s := filled(t)
	s.Clear()
	assert.Equal(t, session.Session{}, *s)
	assert.Equal(t, "{}\n", s.String())
}

// TestSession_RoundTrip saves and loads through YAML.
func TestSession_RoundTrip(t *testing.T) {
	s := filled(t)

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	assert.Contains(t, buf.String(), "accuracy: 1e-06")
	assert.Contains(t, buf.String(), "equation:")

	got, err := session.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

// TestSession_File persists to disk.
func TestSession_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numlab.yaml")
	s := filled(t)
	require.NoError(t, s.SaveFile(path))

	got, err := session.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = session.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestLoad_Validation rejects unknown keys and invalid values.
func TestLoad_Validation(t *testing.T) {
	empty, err := session.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &session.Session{}, empty)

	_, err = session.Load(strings.NewReader("colour: blue\n"))
	require.Error(t, err)

	_, err = session.Load(strings.NewReader("accuracy: -1\n"))
	require.ErrorIs(t, err, session.ErrInvalid)

	_, err = session.Load(strings.NewReader("interval:\n  a: 3\n  b: 3\n"))
	require.ErrorIs(t, err, session.ErrInvalid)

	_, err = session.Load(strings.NewReader("equation: exec(x)\n"))
	require.ErrorIs(t, err, expr.ErrForbiddenIdentifier)

	partial, err := session.Load(strings.NewReader("interval:\n  a: -1\n  b: 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, "[-1, 2.5]", partial.Interval.String())
}

// TestParseInterval accepts the common notations.
func TestParseInterval(t *testing.T) {
	for _, in := range []string{"1 2", "1, 2", "[1 2]", "(1, 2)", "  [ 1 , 2 ] "} {
		iv, err := session.ParseInterval(in)
		require.NoError(t, err, in)
		assert.Equal(t, session.Interval{A: 1, B: 2}, iv, in)
	}
	for _, in := range []string{"", "1", "1 2 3", "a b", "2 2"} {
		_, err := session.ParseInterval(in)
		require.ErrorIs(t, err, session.ErrInvalid, in)
	}
}

// TestParsePair allows equal values.
func TestParsePair(t *testing.T) {
	a, b, err := session.ParsePair("(1, 1)")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 1.0, b)

	_, _, err = session.ParsePair("1 x")
	require.ErrorIs(t, err, session.ErrInvalid)
}
