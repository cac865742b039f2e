package main

import (
	"fmt"

	"surfacer/internal/context"
	"surfacer/internal/examples"
)

// buildSurface constructs one of the named example surfaces into a fresh
// Context, returning its root node. They are built by the same
// internal/examples functions its tests exercise (with the CLI's own
// parameters), wired up for the CLI by name.
func buildSurface(name string) (*context.Context, context.Node, error) {
	c := context.New()
	var (
		root context.Node
		err  error
	)
	switch name {
	case "circle":
		root, err = examples.Circle(c, 1)
	case "union":
		root, err = examples.TwoCircleUnion(c, 1, 1.5)
	case "difference":
		root, err = examples.TwoCircleDifference(c, 1.5, 0.8, 0.4, 0)
	case "rounded-box":
		root, err = examples.RoundedBox2D(c, 1, 0.7, 0.2)
	default:
		return nil, context.Node{}, fmt.Errorf("unknown surface %q (want one of: circle, union, difference, rounded-box)", name)
	}
	if err != nil {
		return nil, context.Node{}, err
	}
	return c, root, nil
}
