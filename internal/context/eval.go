package context

import surferrors "surfacer/internal/errors"

// Eval interprets the graph rooted at root, resolving named variables from
// bindings. X, Y, and Z may also be supplied via bindings; any variable
// reached during evaluation that is absent from bindings is reported as
// errors.UnknownVariable. Eval exists for tests and one-shot callers; the
// render path always goes through a compiled tape instead.
func (c *Context) Eval(root Node, bindings map[string]float64) (float64, error) {
	if err := c.own(root); err != nil {
		return 0, err
	}
	memo := make([]float64, len(c.ops))
	done := make([]bool, len(c.ops))
	return c.evalNode(root, bindings, memo, done)
}

// EvalXYZ is a convenience wrapper over Eval that binds X, Y, and Z
// directly, as in the worked example in the specification.
func (c *Context) EvalXYZ(root Node, x, y, z float64) (float64, error) {
	return c.Eval(root, map[string]float64{"X": x, "Y": y, "Z": z})
}

func (c *Context) evalNode(n Node, bindings map[string]float64, memo []float64, done []bool) (float64, error) {
	if done[n.idx] {
		return memo[n.idx], nil
	}
	op := c.op(n)
	var v float64
	switch op.Kind {
	case KindConst:
		v = op.Const
	case KindVar:
		bound, ok := bindings[op.VarName]
		if !ok {
			return 0, surferrors.NewUnknownVariable(op.VarName)
		}
		v = bound
	case KindUnary:
		a, err := c.evalNode(op.A, bindings, memo, done)
		if err != nil {
			return 0, err
		}
		v = foldUnary(op.Unary, a)
	case KindBinary:
		a, err := c.evalNode(op.A, bindings, memo, done)
		if err != nil {
			return 0, err
		}
		b, err := c.evalNode(op.B, bindings, memo, done)
		if err != nil {
			return 0, err
		}
		v = foldBinary(op.Binary, a, b)
	default:
		surferrors.Invariant("unknown node kind %d", op.Kind)
	}
	memo[n.idx] = v
	done[n.idx] = true
	return v, nil
}
