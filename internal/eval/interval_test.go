package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/eval"
)

func TestIntervalMulAllFourCorners(t *testing.T) {
	a := eval.Interval{Lo: -2, Hi: 3}
	b := eval.Interval{Lo: -1, Hi: 5}
	got := a.Mul(b)
	require.Equal(t, eval.Interval{Lo: -10, Hi: 15}, got)
}

func TestIntervalRecipStraddlingZeroIsUniversal(t *testing.T) {
	got := eval.Interval{Lo: -1, Hi: 1}.Recip()
	require.True(t, math.IsInf(got.Lo, -1))
	require.True(t, math.IsInf(got.Hi, 1))
}

func TestIntervalRecipPositive(t *testing.T) {
	got := eval.Interval{Lo: 2, Hi: 4}.Recip()
	require.InDelta(t, 0.25, got.Lo, 1e-12)
	require.InDelta(t, 0.5, got.Hi, 1e-12)
}

func TestIntervalSqrtClampsNegativeLowerBound(t *testing.T) {
	got := eval.Interval{Lo: -4, Hi: 9}.Sqrt()
	require.Equal(t, 0.0, got.Lo)
	require.Equal(t, 3.0, got.Hi)
}

func TestIntervalSqrtWhollyNegativeIsNaN(t *testing.T) {
	got := eval.Interval{Lo: -9, Hi: -1}.Sqrt()
	require.True(t, math.IsNaN(got.Lo))
	require.True(t, math.IsNaN(got.Hi))
}

func TestIntervalAbsStraddlingZero(t *testing.T) {
	got := eval.Interval{Lo: -5, Hi: 2}.Abs()
	require.Equal(t, eval.Interval{Lo: 0, Hi: 5}, got)
}

func TestIntervalMinMaxChoiceDisjoint(t *testing.T) {
	a := eval.Interval{Lo: 0, Hi: 1}
	b := eval.Interval{Lo: 5, Hi: 9}
	minv, minCh := a.Min(b)
	require.Equal(t, eval.ChoiceLeft, minCh)
	require.Equal(t, a, minv)

	maxv, maxCh := a.Max(b)
	require.Equal(t, eval.ChoiceRight, maxCh)
	require.Equal(t, b, maxv)
}

func TestIntervalMinMaxChoiceOverlapping(t *testing.T) {
	a := eval.Interval{Lo: 0, Hi: 5}
	b := eval.Interval{Lo: 2, Hi: 9}
	_, ch := a.Min(b)
	require.Equal(t, eval.ChoiceBoth, ch)
}

func TestIntervalSinFullPeriodIsBoundUnit(t *testing.T) {
	got := eval.Interval{Lo: 0, Hi: 10}.Sin()
	require.InDelta(t, -1, got.Lo, 1e-9)
	require.InDelta(t, 1, got.Hi, 1e-9)
}

func TestIntervalSinNarrowRange(t *testing.T) {
	got := eval.Interval{Lo: 0, Hi: math.Pi / 4}.Sin()
	require.InDelta(t, 0, got.Lo, 1e-9)
	require.InDelta(t, math.Sqrt2/2, got.Hi, 1e-9)
}

func TestIntervalCosCrossesMaximumAtZero(t *testing.T) {
	got := eval.Interval{Lo: -0.5, Hi: 0.5}.Cos()
	require.InDelta(t, 1, got.Hi, 1e-9)
}

func TestIntervalExpMonotone(t *testing.T) {
	got := eval.Interval{Lo: 0, Hi: 1}.Exp()
	require.InDelta(t, 1, got.Lo, 1e-9)
	require.InDelta(t, math.E, got.Hi, 1e-9)
}
