// Package examples builds a handful of named implicit-surface expressions
// for the CLI and tests to render, mirroring the small shape library that
// ships alongside the reference implementation's viewer.
package examples

import "surfacer/internal/context"

// Circle returns x^2 + y^2 - r^2, zero on a circle of radius r centered
// at the origin.
func Circle(c *context.Context, r float64) (context.Node, error) {
	x2, err := c.Square(c.X())
	if err != nil {
		return context.Node{}, err
	}
	y2, err := c.Square(c.Y())
	if err != nil {
		return context.Node{}, err
	}
	sum, err := c.Add(x2, y2)
	if err != nil {
		return context.Node{}, err
	}
	return c.Sub(sum, c.Constant(r*r))
}

// CircleAt is Circle translated to be centered at (cx, cy).
func CircleAt(c *context.Context, cx, cy, r float64) (context.Node, error) {
	dx, err := c.Sub(c.X(), c.Constant(cx))
	if err != nil {
		return context.Node{}, err
	}
	dy, err := c.Sub(c.Y(), c.Constant(cy))
	if err != nil {
		return context.Node{}, err
	}
	dx2, err := c.Square(dx)
	if err != nil {
		return context.Node{}, err
	}
	dy2, err := c.Square(dy)
	if err != nil {
		return context.Node{}, err
	}
	sum, err := c.Add(dx2, dy2)
	if err != nil {
		return context.Node{}, err
	}
	return c.Sub(sum, c.Constant(r*r))
}

// Union returns the shape occupied by either a or b: min(a, b), negative
// wherever either input is negative.
func Union(c *context.Context, a, b context.Node) (context.Node, error) {
	return c.Min(a, b)
}

// Intersection returns the shape occupied by both a and b: max(a, b).
func Intersection(c *context.Context, a, b context.Node) (context.Node, error) {
	return c.Max(a, b)
}

// Difference returns the shape occupied by a but not b: max(a, -b).
func Difference(c *context.Context, a, b context.Node) (context.Node, error) {
	negB, err := c.Neg(b)
	if err != nil {
		return context.Node{}, err
	}
	return c.Max(a, negB)
}

// TwoCircleDifference is a ready-made scene: a circle of radius r1 minus a
// circle of radius r2 offset by (dx, dy), centered at the origin.
func TwoCircleDifference(c *context.Context, r1, r2, dx, dy float64) (context.Node, error) {
	a, err := Circle(c, r1)
	if err != nil {
		return context.Node{}, err
	}
	b, err := CircleAt(c, dx, dy, r2)
	if err != nil {
		return context.Node{}, err
	}
	return Difference(c, a, b)
}

// TwoCircleUnion is a ready-made scene: the union of two circles of radius
// r, centered at (-d, 0) and (d, 0).
func TwoCircleUnion(c *context.Context, r, d float64) (context.Node, error) {
	a, err := CircleAt(c, -d, 0, r)
	if err != nil {
		return context.Node{}, err
	}
	b, err := CircleAt(c, d, 0, r)
	if err != nil {
		return context.Node{}, err
	}
	return Union(c, a, b)
}

// RoundedBox2D returns a 2D box of half-extents (hx, hy) with corners
// rounded to radius r, via the standard max-of-axis-distances SDF
// composition clamped and offset by r.
func RoundedBox2D(c *context.Context, hx, hy, r float64) (context.Node, error) {
	ax, err := c.Abs(c.X())
	if err != nil {
		return context.Node{}, err
	}
	ay, err := c.Abs(c.Y())
	if err != nil {
		return context.Node{}, err
	}
	qx, err := c.Sub(ax, c.Constant(hx-r))
	if err != nil {
		return context.Node{}, err
	}
	qy, err := c.Sub(ay, c.Constant(hy-r))
	if err != nil {
		return context.Node{}, err
	}

	qxClamped, err := c.Max(qx, c.Constant(0))
	if err != nil {
		return context.Node{}, err
	}
	qyClamped, err := c.Max(qy, c.Constant(0))
	if err != nil {
		return context.Node{}, err
	}
	qx2, err := c.Square(qxClamped)
	if err != nil {
		return context.Node{}, err
	}
	qy2, err := c.Square(qyClamped)
	if err != nil {
		return context.Node{}, err
	}
	outside, err := c.Add(qx2, qy2)
	if err != nil {
		return context.Node{}, err
	}
	outsideDist, err := c.Sqrt(outside)
	if err != nil {
		return context.Node{}, err
	}

	inside, err := c.Max(qx, qy)
	if err != nil {
		return context.Node{}, err
	}
	insideClamped, err := c.Min(inside, c.Constant(0))
	if err != nil {
		return context.Node{}, err
	}

	combined, err := c.Add(outsideDist, insideClamped)
	if err != nil {
		return context.Node{}, err
	}
	return c.Sub(combined, c.Constant(r))
}
