package render

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"surfacer/internal/eval"
	"surfacer/internal/regalloc"
	"surfacer/internal/ssa"
)

// Render2D rasterizes tape into an ImageSize x ImageSize row-major grid
// with row 0 at the top, following cfg's tiling, register budget, and
// transform.
func Render2D[T any](tape ssa.Tape, cfg Config, mode Mode[T]) ([]T, error) {
	out, _, err := render2D(tape, cfg, mode)
	return out, err
}

// Render2DWithStats is Render2D plus a tile-outcome breakdown, used by the
// render CLI command to report how much of the image was filled outright
// versus recursed versus evaluated per pixel.
func Render2DWithStats[T any](tape ssa.Tape, cfg Config, mode Mode[T]) ([]T, StatsSnapshot, error) {
	return render2D(tape, cfg, mode)
}

func render2D[T any](tape ssa.Tape, cfg Config, mode Mode[T]) ([]T, StatsSnapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, StatsSnapshot{}, err
	}

	size := int(cfg.ImageSize)
	out := make([]T, size*size)
	top := int(cfg.TileSizes[0])

	var tiles []tileCoord
	for ty := 0; ty < size; ty += top {
		for tx := 0; tx < size; tx += top {
			tiles = append(tiles, tileCoord{tx, ty})
		}
	}

	var stats Stats
	var next atomic.Int64
	g, _ := errgroup.WithContext(context.Background())
	for i := uint32(0); i < cfg.Threads; i++ {
		g.Go(func() error {
			w := &worker[T]{cfg: cfg, mode: mode, stats: &stats}
			zero := eval.Interval{}
			for {
				idx := next.Add(1) - 1
				if idx >= int64(len(tiles)) {
					return nil
				}
				t := tiles[idx]
				w.renderTile(out, size, t.x, t.y, top, 0, tape, zero)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, StatsSnapshot{}, err
	}
	return out, stats.snapshot(), nil
}

type tileCoord struct{ x, y int }

// worker holds the per-goroutine state for a render: nothing here is
// shared across workers except the atomic tile counter and stats in the
// enclosing render2D call.
type worker[T any] struct {
	cfg   Config
	mode  Mode[T]
	stats *Stats
}

// renderTile evaluates tape's interval bound over the tile at
// (tx, ty, tileSize) and either fills it uniformly, recurses into the
// next tile-size level with a simplified tape, or (at the leaf depth)
// evaluates every pixel individually.
func (w *worker[T]) renderTile(out []T, imgSize, tx, ty, tileSize, depth int, tape ssa.Tape, z eval.Interval) {
	xi, yi := w.tileBounds(tx, ty, tileSize)

	bound, _ := eval.EvalIntervalSSA(tape, xi, yi, z, nil)
	if value, decided := w.mode.Interval(bound, depth); decided {
		w.stats.TilesFilled.Add(1)
		fill(out, imgSize, tx, ty, tileSize, value)
		return
	}

	if depth+1 < len(w.cfg.TileSizes) {
		w.stats.TilesRecursed.Add(1)
		simplified, _ := eval.Simplify(tape, xi, yi, z, nil)
		childSize := int(w.cfg.TileSizes[depth+1])
		for cy := ty; cy < ty+tileSize; cy += childSize {
			for cx := tx; cx < tx+tileSize; cx += childSize {
				w.renderTile(out, imgSize, cx, cy, childSize, depth+1, simplified, z)
			}
		}
		return
	}

	w.stats.TilesEvaluated.Add(1)
	w.evalLeaf(out, imgSize, tx, ty, tileSize, tape, z)
}

func (w *worker[T]) tileBounds(tx, ty, tileSize int) (eval.Interval, eval.Interval) {
	corners := [4][2]float64{
		{float64(tx), float64(ty)},
		{float64(tx + tileSize), float64(ty)},
		{float64(tx), float64(ty + tileSize)},
		{float64(tx + tileSize), float64(ty + tileSize)},
	}
	xi := eval.Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
	yi := eval.Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
	for _, c := range corners {
		wx, wy := w.cfg.Mat.Apply(c[0], c[1])
		xi.Lo, xi.Hi = min(xi.Lo, wx), max(xi.Hi, wx)
		yi.Lo, yi.Hi = min(yi.Lo, wy), max(yi.Hi, wy)
	}
	return xi, yi
}

// evalLeaf re-allocates tape (already specialized to this tile's bound by
// the recursion above) into a register-machine tape and evaluates every
// pixel in the tile via the batched float evaluator.
func (w *worker[T]) evalLeaf(out []T, imgSize, tx, ty, tileSize int, tape ssa.Tape, z eval.Interval) {
	n := tileSize * tileSize
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)

	i := 0
	for py := ty; py < ty+tileSize; py++ {
		for px := tx; px < tx+tileSize; px++ {
			wx, wy := w.cfg.Mat.Apply(float64(px)+0.5, float64(py)+0.5)
			xs[i], ys[i] = wx, wy
			zs[i] = (z.Lo + z.Hi) / 2
			i++
		}
	}

	vmTape, err := regalloc.Allocate(tape, w.cfg.RegisterLimit)
	if err != nil {
		// cfg.Validate already rejected RegisterLimit == 0; anything else
		// reaching here is an internal invariant violation, not a user error.
		panic(err)
	}
	vals := make([]float64, n)
	eval.EvalFloatSlice(vmTape, xs, ys, zs, nil, vals)

	i = 0
	for py := ty; py < ty+tileSize; py++ {
		row := (imgSize - 1 - py) * imgSize
		for px := tx; px < tx+tileSize; px++ {
			out[row+px] = w.mode.Pixel(vals[i])
			i++
		}
	}
}

func fill[T any](out []T, imgSize, tx, ty, tileSize int, value T) {
	for py := ty; py < ty+tileSize; py++ {
		row := (imgSize - 1 - py) * imgSize
		for px := tx; px < tx+tileSize; px++ {
			out[row+px] = value
		}
	}
}
