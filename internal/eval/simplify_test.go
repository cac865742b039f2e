package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/context"
	"surfacer/internal/eval"
	"surfacer/internal/regalloc"
)

func TestSimplifyResolvesMinToSurvivingSide(t *testing.T) {
	c := context.New()
	// min(x - 10, y + 10): over x in [0,1], y in [0,1], x-10 is always <
	// y+10, so the Min should resolve to the left side and the right side
	// (and everything feeding only it) should fall out of the tape.
	left, err := c.Sub(c.X(), c.Constant(10))
	require.NoError(t, err)
	right, err := c.Add(c.Y(), c.Constant(10))
	require.NoError(t, err)
	root, err := c.Min(left, right)
	require.NoError(t, err)

	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	bound := eval.Interval{Lo: 0, Hi: 1}
	simplified, rootBound := eval.Simplify(tape, bound, bound, eval.Interval{}, nil)
	require.Less(t, len(simplified), len(tape))
	require.InDelta(t, -10, rootBound.Lo, 1e-9)
	require.InDelta(t, -9, rootBound.Hi, 1e-9)

	vmTape, err := regalloc.Allocate(simplified, 8)
	require.NoError(t, err)
	for _, pt := range [][2]float64{{0, 0}, {0.5, 1}, {1, 0}} {
		want, err := c.EvalXYZ(root, pt[0], pt[1], 0)
		require.NoError(t, err)
		got := eval.EvalPoint(vmTape, pt[0], pt[1], 0, nil)
		require.InDelta(t, want, got, 1e-9)
	}
}

func TestSimplifyLeavesAmbiguousMinUntouched(t *testing.T) {
	c := context.New()
	root, err := c.Min(c.X(), c.Y())
	require.NoError(t, err)

	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	bound := eval.Interval{Lo: -1, Hi: 1}
	simplified, _ := eval.Simplify(tape, bound, bound, eval.Interval{}, nil)
	require.Equal(t, len(tape), len(simplified))
}
