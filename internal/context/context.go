// Package context implements a deduplicating, constant-folding builder for
// math-expression graphs: the entry point of the evaluation pipeline.
//
// Every Context owns a dense arena of Op nodes. Building the same
// expression twice (same Op, same operands) always returns the same Node,
// and a Unary/Binary op whose operands are all Const is evaluated
// immediately instead of being materialized as a graph node.
package context

import (
	"math"
	"sync/atomic"

	surferrors "surfacer/internal/errors"
)

var nextCtxID uint32

// Context owns a graph arena and the interning table that keeps it
// deduplicated. The zero value is not usable; construct with New.
type Context struct {
	id   uint32
	ops  []Op
	keys map[opKey]Node

	varIndex map[string]int32
	varNames []string

	x, y, z Node
}

// opKey is the interning key: it is comparable and hashable, and it
// compares floats by bit pattern rather than IEEE equality so that two
// syntactically identical constants (including NaN-with-the-same-payload)
// dedupe, while +0 and -0 do not.
type opKey struct {
	kind      NodeKind
	unary     UnaryOp
	binary    BinaryOp
	constBits uint64
	varName   string
	a, b      Node
}

// New creates an empty Context. X, Y, and Z are interned on first use, so
// they only count toward Len once something has asked for them.
func New() *Context {
	return &Context{
		id:       atomic.AddUint32(&nextCtxID, 1),
		keys:     make(map[opKey]Node, 64),
		varIndex: make(map[string]int32, 4),
	}
}

// Len returns the number of distinct nodes held by the context.
func (c *Context) Len() int { return len(c.ops) }

func (c *Context) alloc(op Op) Node {
	n := Node{idx: int32(len(c.ops)), ctx: c.id}
	c.ops = append(c.ops, op)
	return n
}

func (c *Context) own(n Node) error {
	if n.ctx != c.id {
		return surferrors.NewBadNode(int(n.idx))
	}
	return nil
}

func (c *Context) op(n Node) Op { return c.ops[n.idx] }

// X, Y, and Z return the stable handles for the three predefined
// coordinate variables.
func (c *Context) X() Node { return c.internVar("X") }
func (c *Context) Y() Node { return c.internVar("Y") }
func (c *Context) Z() Node { return c.internVar("Z") }

func (c *Context) internVar(name string) Node {
	key := opKey{kind: KindVar, varName: name}
	if n, ok := c.keys[key]; ok {
		return n
	}
	id, ok := c.varIndex[name]
	if !ok {
		id = int32(len(c.varNames))
		c.varIndex[name] = id
		c.varNames = append(c.varNames, name)
	}
	n := c.alloc(Op{Kind: KindVar, VarID: id, VarName: name})
	c.keys[key] = n
	switch name {
	case "X":
		c.x = n
	case "Y":
		c.y = n
	case "Z":
		c.z = n
	}
	return n
}

// Var registers (or looks up) a named user variable and returns its handle.
func (c *Context) Var(name string) Node {
	return c.internVar(name)
}

// VarName returns the name bound to a Var node, and false for any other
// node kind.
func (c *Context) VarName(n Node) (string, bool) {
	if err := c.own(n); err != nil {
		return "", false
	}
	op := c.op(n)
	if op.Kind != KindVar {
		return "", false
	}
	return op.VarName, true
}

// Constant interns a literal value, returning the same Node for bit-exact
// repeated calls.
func (c *Context) Constant(f float64) Node {
	key := opKey{kind: KindConst, constBits: math.Float64bits(f)}
	if n, ok := c.keys[key]; ok {
		return n
	}
	n := c.alloc(Op{Kind: KindConst, Const: f})
	c.keys[key] = n
	return n
}

// ConstValue returns the folded value of a Const node.
func (c *Context) ConstValue(n Node) (float64, bool) {
	if err := c.own(n); err != nil {
		return 0, false
	}
	op := c.op(n)
	if op.Kind != KindConst {
		return 0, false
	}
	return op.Const, true
}

func (c *Context) unary(kind UnaryOp, a Node) (Node, error) {
	if err := c.own(a); err != nil {
		return Node{}, err
	}
	if v, ok := c.ConstValue(a); ok {
		return c.Constant(foldUnary(kind, v)), nil
	}
	key := opKey{kind: KindUnary, unary: kind, a: a}
	if n, ok := c.keys[key]; ok {
		return n, nil
	}
	n := c.alloc(Op{Kind: KindUnary, Unary: kind, A: a})
	c.keys[key] = n
	return n, nil
}

func (c *Context) binary(kind BinaryOp, a, b Node) (Node, error) {
	if err := c.own(a); err != nil {
		return Node{}, err
	}
	if err := c.own(b); err != nil {
		return Node{}, err
	}
	if va, ok := c.ConstValue(a); ok {
		if vb, ok := c.ConstValue(b); ok {
			return c.Constant(foldBinary(kind, va, vb)), nil
		}
	}
	key := opKey{kind: KindBinary, binary: kind, a: a, b: b}
	if n, ok := c.keys[key]; ok {
		return n, nil
	}
	n := c.alloc(Op{Kind: KindBinary, Binary: kind, A: a, B: b})
	c.keys[key] = n
	return n, nil
}

func foldUnary(kind UnaryOp, v float64) float64 {
	switch kind {
	case Neg:
		return -v
	case Abs:
		return math.Abs(v)
	case Recip:
		return 1.0 / v
	case Sqrt:
		return math.Sqrt(v)
	case Square:
		return v * v
	case Sin:
		return math.Sin(v)
	case Cos:
		return math.Cos(v)
	case Exp:
		return math.Exp(v)
	default:
		surferrors.Invariant("unknown unary op %d", kind)
		return 0
	}
}

func foldBinary(kind BinaryOp, a, b float64) float64 {
	switch kind {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	case Min:
		return math.Min(a, b)
	case Max:
		return math.Max(a, b)
	default:
		surferrors.Invariant("unknown binary op %d", kind)
		return 0
	}
}

// Neg, Abs, Recip, Sqrt, Square, Sin, Cos, and Exp build (or fold) the
// one-argument math operations.
func (c *Context) Neg(a Node) (Node, error)    { return c.unary(Neg, a) }
func (c *Context) Abs(a Node) (Node, error)    { return c.unary(Abs, a) }
func (c *Context) Recip(a Node) (Node, error)  { return c.unary(Recip, a) }
func (c *Context) Sqrt(a Node) (Node, error)   { return c.unary(Sqrt, a) }
func (c *Context) Square(a Node) (Node, error) { return c.unary(Square, a) }
func (c *Context) Sin(a Node) (Node, error)    { return c.unary(Sin, a) }
func (c *Context) Cos(a Node) (Node, error)    { return c.unary(Cos, a) }
func (c *Context) Exp(a Node) (Node, error)    { return c.unary(Exp, a) }

// Add, Sub, Mul, Div, Min, and Max build (or fold) the two-argument math
// operations. Div is a dedicated opcode rather than sugar for
// Mul(a, Recip(b)), so that its constant-fold rule (and the VM opcode it
// lowers to) preserve IEEE division-by-zero semantics exactly.
func (c *Context) Add(a, b Node) (Node, error) { return c.binary(Add, a, b) }
func (c *Context) Sub(a, b Node) (Node, error) { return c.binary(Sub, a, b) }
func (c *Context) Mul(a, b Node) (Node, error) { return c.binary(Mul, a, b) }
func (c *Context) Div(a, b Node) (Node, error) { return c.binary(Div, a, b) }
func (c *Context) Min(a, b Node) (Node, error) { return c.binary(Min, a, b) }
func (c *Context) Max(a, b Node) (Node, error) { return c.binary(Max, a, b) }
