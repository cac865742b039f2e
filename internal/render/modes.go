package render

import (
	"image/color"
	"math"

	"surfacer/internal/eval"
)

// Bit renders a binary inside/outside mask: a pixel is true where the
// surface value is negative (inside the zero-set).
type Bit struct{}

func (Bit) Interval(b eval.Interval, _ int) (bool, bool) {
	switch {
	case b.Hi < 0:
		return true, true
	case b.Lo > 0:
		return false, true
	default:
		return false, false
	}
}

func (Bit) Pixel(f float64) bool { return f < 0 }

// RGB is a 3-byte color value, the pixel type Sdf maps a distance-field
// sample onto.
type RGB [3]byte

// Sdf never decides at the tile level, so every tile recurses to the
// pixel level and every pixel is colored from a real distance-field
// value: a blue/orange diverging map, banded so isolines are visible
// without a separate contouring pass.
type Sdf struct{}

func (Sdf) Interval(eval.Interval, int) (RGB, bool) { return RGB{}, false }

func (Sdf) Pixel(f float64) RGB {
	band := math.Mod(math.Abs(f)*8, 1.0)
	intensity := byte(180 + 60*band)
	if f < 0 {
		return RGB{40, 80, intensity}
	}
	return RGB{intensity, 120, 40}
}

// DebugCategory classifies how a pixel's value was produced, distinguishing
// a top-level tile fill from a recursed subtile fill and a leaf-level
// pixel evaluation, for visualizing where the renderer spent its
// recursion budget.
type DebugCategory uint8

const (
	DebugEmptyTile DebugCategory = iota
	DebugFilledTile
	DebugEmptySubtile
	DebugFilledSubtile
	DebugEmpty
	DebugFilled
)

// Color maps a category to the debug-visualization palette.
func (c DebugCategory) Color() color.RGBA {
	switch c {
	case DebugEmptyTile:
		return color.RGBA{R: 50, A: 255}
	case DebugFilledTile:
		return color.RGBA{R: 255, A: 255}
	case DebugEmptySubtile:
		return color.RGBA{G: 50, A: 255}
	case DebugFilledSubtile:
		return color.RGBA{G: 255, A: 255}
	case DebugFilled:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default: // DebugEmpty
		return color.RGBA{A: 255}
	}
}

// Debug reports, per tile or pixel, whether it came from a top-level tile
// fill, a recursed subtile fill, or a per-pixel evaluation at the leaf
// depth — and whether that fill/evaluation landed inside or outside the
// surface.
type Debug struct{}

func (Debug) Interval(b eval.Interval, depth int) (DebugCategory, bool) {
	switch {
	case b.Hi < 0:
		if depth == 0 {
			return DebugFilledTile, true
		}
		return DebugFilledSubtile, true
	case b.Lo > 0:
		if depth == 0 {
			return DebugEmptyTile, true
		}
		return DebugEmptySubtile, true
	default:
		return 0, false
	}
}

func (Debug) Pixel(f float64) DebugCategory {
	if f < 0 {
		return DebugFilled
	}
	return DebugEmpty
}
