package render

import "surfacer/internal/eval"

// Mode specializes what a tile or pixel evaluation produces. Bit, Sdf, and
// Debug are the three instances the renderer ships with.
type Mode[T any] interface {
	// Interval decides whether a whole tile can be filled uniformly from
	// its interval bound. decided is false when the tile must recurse
	// further (or, at the leaf depth, be evaluated per pixel).
	Interval(bound eval.Interval, depth int) (value T, decided bool)
	// Pixel computes a single sample's output from its scalar value.
	Pixel(f float64) T
}
