package regalloc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/context"
	"surfacer/internal/eval"
	"surfacer/internal/regalloc"
)

// buildCircle returns sqrt(x^2+y^2) - 1, a simple two-variable expression
// with enough shared subexpressions to exercise dedup and both register
// pressure branches.
func buildCircle(t *testing.T) (*context.Context, context.Node) {
	t.Helper()
	c := context.New()
	x2, err := c.Square(c.X())
	require.NoError(t, err)
	y2, err := c.Square(c.Y())
	require.NoError(t, err)
	sum, err := c.Add(x2, y2)
	require.NoError(t, err)
	root, err := c.Sqrt(sum)
	require.NoError(t, err)
	root, err = c.Sub(root, c.Constant(1))
	require.NoError(t, err)
	return c, root
}

func TestAllocateMatchesDirectEval(t *testing.T) {
	c, root := buildCircle(t)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	for _, limit := range []uint8{1, 2, 3, 8, 255} {
		vmTape, err := regalloc.Allocate(tape, limit)
		require.NoErrorf(t, err, "limit=%d", limit)

		for _, pt := range [][2]float64{{0, 0}, {3, 4}, {-1, 2}, {0.5, 0.5}} {
			want, err := c.EvalXYZ(root, pt[0], pt[1], 0)
			require.NoError(t, err)
			got := eval.EvalPoint(vmTape, pt[0], pt[1], 0, nil)
			require.InDeltaf(t, want, got, 1e-9, "limit=%d point=%v", limit, pt)
		}
	}
}

func TestAllocateRejectsZeroRegisters(t *testing.T) {
	c, root := buildCircle(t)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	_, err = regalloc.Allocate(tape, 0)
	require.Error(t, err)
}

// randomTape builds a deep, lopsided expression tree (so the allocator is
// forced to spill under tight register limits) over x, y, and z.
func randomTape(t *testing.T, rng *rand.Rand, n int) (*context.Context, context.Node) {
	t.Helper()
	c := context.New()
	nodes := []context.Node{c.X(), c.Y(), c.Z()}
	pick := func() context.Node { return nodes[rng.Intn(len(nodes))] }

	unaries := []func(context.Node) (context.Node, error){c.Neg, c.Abs, c.Sqrt, c.Square}
	binaries := []func(a, b context.Node) (context.Node, error){c.Add, c.Sub, c.Mul, c.Min, c.Max}

	for i := 0; i < n; i++ {
		var next context.Node
		var err error
		if rng.Intn(2) == 0 {
			next, err = unaries[rng.Intn(len(unaries))](pick())
		} else {
			next, err = binaries[rng.Intn(len(binaries))](pick(), pick())
		}
		require.NoError(t, err)
		nodes = append(nodes, next)
	}
	return c, nodes[len(nodes)-1]
}

func TestAllocateRegisterLimitInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c, root := randomTape(t, rng, 1000)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	baseline, err := regalloc.Allocate(tape, 255)
	require.NoError(t, err)

	for trial := 0; trial < 100; trial++ {
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		z := rng.Float64()*20 - 10
		want := eval.EvalPoint(baseline, x, y, z, nil)

		for _, limit := range []uint8{2, 4, 8, 16} {
			vmTape, err := regalloc.Allocate(tape, limit)
			require.NoErrorf(t, err, "limit=%d", limit)
			got := eval.EvalPoint(vmTape, x, y, z, nil)
			if math.IsNaN(want) {
				require.Truef(t, math.IsNaN(got), "limit=%d x=%v y=%v z=%v", limit, x, y, z)
				continue
			}
			require.InDeltaf(t, want, got, 1e-6, "limit=%d x=%v y=%v z=%v", limit, x, y, z)
		}
	}
}

func TestAllocateHonorsRegisterLimit(t *testing.T) {
	c, root := randomTape(t, rand.New(rand.NewSource(2)), 200)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	const limit = 4
	vmTape, err := regalloc.Allocate(tape, limit)
	require.NoError(t, err)
	require.Equal(t, uint8(limit), vmTape.RegisterLimit)

	for _, inst := range vmTape.Instructions {
		require.Lessf(t, inst.Out, uint8(limit), "out register out of range: %+v", inst)
	}
}
