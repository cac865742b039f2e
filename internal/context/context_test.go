package context

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredefinedVarsAreStable(t *testing.T) {
	c := New()
	x1 := c.X()
	x2 := c.X()
	require.Equal(t, x1, x2)
}

func TestConstantFolding(t *testing.T) {
	c := New()
	a := c.Constant(1.0)
	require.Equal(t, 1, c.Len())
	b := c.Constant(-1.0)
	require.Equal(t, 2, c.Len())

	sum, err := c.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	v, ok := c.ConstValue(sum)
	require.True(t, ok)
	require.Equal(t, 0.0, v)

	// Repeating the same call must not grow the arena.
	sum2, err := c.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, sum, sum2)
	require.Equal(t, 3, c.Len())

	_, err = c.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
}

func TestNegAddConstFoldsToMinusTwo(t *testing.T) {
	c := New()
	one := c.Constant(1.0)
	sum, err := c.Add(one, one)
	require.NoError(t, err)
	neg, err := c.Neg(sum)
	require.NoError(t, err)

	v, ok := c.ConstValue(neg)
	require.True(t, ok)
	require.Equal(t, -2.0, v)
	require.Equal(t, 3, c.Len())
}

func TestEvalXYZ(t *testing.T) {
	c := New()
	sum, err := c.Add(c.X(), c.Y())
	require.NoError(t, err)

	v, err := c.EvalXYZ(sum, 2.0, 3.0, 0.0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestEvalUnknownVariable(t *testing.T) {
	c := New()
	v := c.Var("r")
	_, err := c.Eval(v, map[string]float64{"X": 1})
	require.Error(t, err)
}

func TestBadNodeAcrossContexts(t *testing.T) {
	c1 := New()
	c2 := New()
	_, err := c2.Add(c1.X(), c2.Y())
	require.Error(t, err)
}

func TestBitExactDedup(t *testing.T) {
	c := New()
	posZero := c.Constant(0.0)
	negZero := c.Constant(math.Copysign(0, -1))
	require.NotEqual(t, posZero, negZero)

	nan1 := c.Constant(math.NaN())
	nan2 := c.Constant(math.NaN())
	require.Equal(t, nan1, nan2)
}

func TestDedupCountsDistinctOps(t *testing.T) {
	c := New()
	a := c.X()
	b := c.Y()
	before := c.Len()
	_, err := c.Add(a, b)
	require.NoError(t, err)
	_, err = c.Add(a, b)
	require.NoError(t, err)
	_, err = c.Add(b, a)
	require.NoError(t, err)
	require.Equal(t, before+2, c.Len()) // add(a,b) and add(b,a) are distinct
}
