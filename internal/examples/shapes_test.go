package examples_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/context"
	"surfacer/internal/examples"
)

func TestCircleSignAtOriginAndFar(t *testing.T) {
	c := context.New()
	root, err := examples.Circle(c, 1)
	require.NoError(t, err)

	inside, err := c.EvalXYZ(root, 0, 0, 0)
	require.NoError(t, err)
	require.Less(t, inside, 0.0)

	outside, err := c.EvalXYZ(root, 5, 0, 0)
	require.NoError(t, err)
	require.Greater(t, outside, 0.0)

	onBoundary, err := c.EvalXYZ(root, 1, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, onBoundary, 1e-9)
}

func TestTwoCircleUnionIsInsideEitherCircle(t *testing.T) {
	c := context.New()
	root, err := examples.TwoCircleUnion(c, 1, 2)
	require.NoError(t, err)

	leftCenter, err := c.EvalXYZ(root, -2, 0, 0)
	require.NoError(t, err)
	require.Less(t, leftCenter, 0.0)

	rightCenter, err := c.EvalXYZ(root, 2, 0, 0)
	require.NoError(t, err)
	require.Less(t, rightCenter, 0.0)

	between, err := c.EvalXYZ(root, 0, 0, 0)
	require.NoError(t, err)
	require.Greater(t, between, 0.0)
}

func TestTwoCircleDifferenceCutsOutOverlap(t *testing.T) {
	c := context.New()
	root, err := examples.TwoCircleDifference(c, 2, 1, 0, 0)
	require.NoError(t, err)

	// Same center and the cutout circle is smaller, so everything inside it
	// is excluded from the difference (outside == positive).
	v, err := c.EvalXYZ(root, 0, 0, 0)
	require.NoError(t, err)
	require.Greater(t, v, 0.0)

	// Between the two radii, still inside the big circle and outside the
	// cutout.
	v, err = c.EvalXYZ(root, 1.5, 0, 0)
	require.NoError(t, err)
	require.Less(t, v, 0.0)
}

func TestRoundedBox2DContainsOrigin(t *testing.T) {
	c := context.New()
	root, err := examples.RoundedBox2D(c, 2, 1, 0.3)
	require.NoError(t, err)

	v, err := c.EvalXYZ(root, 0, 0, 0)
	require.NoError(t, err)
	require.Less(t, v, 0.0)

	v, err = c.EvalXYZ(root, 10, 10, 0)
	require.NoError(t, err)
	require.Greater(t, v, 0.0)
}
