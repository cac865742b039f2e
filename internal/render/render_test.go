package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/context"
	"surfacer/internal/examples"
	"surfacer/internal/render"
)

func circleConfig(threads uint32) render.Config {
	const scale = 3.0 / 16.0
	return render.Config{
		ImageSize:     16,
		TileSizes:     []uint32{16, 4, 1},
		Threads:       threads,
		RegisterLimit: 8,
		Mat:           render.Affine2{A: scale, C: -1.5, E: scale, F: -1.5},
	}
}

func TestRender2DFillsInsideAndOutside(t *testing.T) {
	c := context.New()
	root, err := examples.Circle(c, 1)
	require.NoError(t, err)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	out, err := render.Render2D[bool](tape, circleConfig(1), render.Bit{})
	require.NoError(t, err)
	require.Len(t, out, 16*16)

	// Pixel (8,8) in pixel space maps to world (0,0): inside the unit circle.
	row := 16 - 1 - 8
	require.True(t, out[row*16+8])

	// Pixel (0,0) maps to world (-1.5,-1.5): well outside the unit circle.
	rowCorner := 16 - 1 - 0
	require.False(t, out[rowCorner*16+0])
}

func TestRender2DDeterministicAcrossThreadCounts(t *testing.T) {
	c := context.New()
	root, err := examples.Circle(c, 1)
	require.NoError(t, err)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	single, err := render.Render2D[bool](tape, circleConfig(1), render.Bit{})
	require.NoError(t, err)

	quad, err := render.Render2D[bool](tape, circleConfig(4), render.Bit{})
	require.NoError(t, err)

	require.Equal(t, single, quad)
}

func TestRender2DSdfRecursesEveryTileToLeaf(t *testing.T) {
	c := context.New()
	root, err := examples.Circle(c, 1)
	require.NoError(t, err)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	out, stats, err := render.Render2DWithStats[render.RGB](tape, circleConfig(2), render.Sdf{})
	require.NoError(t, err)
	require.Len(t, out, 16*16)
	// Sdf never decides at the tile level, so every top-level tile must
	// recurse all the way to the leaf depth.
	require.Equal(t, int64(0), stats.TilesFilled)
	require.Greater(t, stats.TilesEvaluated, int64(0))
}

func TestRender2DDebugDistinguishesTileFromSubtile(t *testing.T) {
	c := context.New()
	root, err := examples.Circle(c, 1)
	require.NoError(t, err)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	out, err := render.Render2D[render.DebugCategory](tape, circleConfig(1), render.Debug{})
	require.NoError(t, err)
	require.Len(t, out, 16*16)

	// The single 16x16 top-level tile contains the circle and cannot be
	// decided at depth 0. Pixel (0,0) lies in the 4x4 subtile spanning world
	// [-1.5,-0.75] on both axes, whose bound is [0.125, 3.5], so it fills as
	// DebugEmptySubtile (depth 1) rather than DebugEmptyTile.
	rowCorner := 16 - 1 - 0
	require.Equal(t, render.DebugEmptySubtile, out[rowCorner*16+0])

	// Somewhere along the circle's boundary the tile can't be decided at
	// depth 0 or depth 1 and must fall through to a per-pixel evaluation.
	require.Contains(t, out, render.DebugFilled)
	require.Contains(t, out, render.DebugEmpty)
}

func TestConfigValidateRejectsBadTileSizes(t *testing.T) {
	cfg := circleConfig(1)
	cfg.TileSizes = []uint32{4, 16, 1}
	require.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNonDividingTileSize(t *testing.T) {
	cfg := circleConfig(1)
	cfg.TileSizes = []uint32{16, 5}
	require.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsZeroThreads(t *testing.T) {
	cfg := circleConfig(0)
	require.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsUnalignedImageSize(t *testing.T) {
	cfg := circleConfig(1)
	cfg.ImageSize = 15
	require.Error(t, cfg.Validate())
}
