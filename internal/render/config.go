// Package render implements the hierarchical tile rasterizer: it walks an
// image as a quadtree of tiles backed by a tile-size sequence, using
// interval evaluation to fill or recurse, and falls back to batched
// float evaluation at the leaf depth.
package render

import surferrors "surfacer/internal/errors"

// Affine2 is a 2D affine transform mapping pixel coordinates to world
// coordinates: worldX = A*px + B*py + C, worldY = D*px + E*py + F.
type Affine2 struct {
	A, B, C float64
	D, E, F float64
}

// Apply maps a pixel-space point to world space.
func (m Affine2) Apply(px, py float64) (float64, float64) {
	return m.A*px + m.B*py + m.C, m.D*px + m.E*py + m.F
}

// Config describes one render invocation. The SSA tape handed to Render2D
// carries the expression; Config carries everything about how to turn it
// into pixels.
type Config struct {
	ImageSize     uint32
	TileSizes     []uint32
	Threads       uint32
	RegisterLimit uint8
	Mat           Affine2
}

// Validate checks every BadConfig invariant up front, so a misconfigured
// render fails before any worker is spawned rather than partway through.
func (c Config) Validate() error {
	if len(c.TileSizes) == 0 {
		return surferrors.NewBadConfig("tile sizes must not be empty")
	}
	for i, sz := range c.TileSizes {
		if sz == 0 {
			return surferrors.NewBadConfig("tile sizes must be positive")
		}
		if i == 0 {
			continue
		}
		prev := c.TileSizes[i-1]
		if sz >= prev {
			return surferrors.NewBadConfig("tile sizes must strictly decrease")
		}
		if prev%sz != 0 {
			return surferrors.NewBadConfig("each tile size must divide the previous one")
		}
	}
	if c.ImageSize == 0 {
		return surferrors.NewBadConfig("image size must be positive")
	}
	if c.ImageSize%c.TileSizes[0] != 0 {
		return surferrors.NewBadConfig("image size must be a multiple of the top-level tile size")
	}
	if c.Threads == 0 {
		return surferrors.NewBadConfig("threads must be at least 1")
	}
	if c.RegisterLimit == 0 {
		return surferrors.NewBadConfig("register limit must be at least 1")
	}
	return nil
}
