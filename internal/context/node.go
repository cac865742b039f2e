package context

import "fmt"

// Node is an opaque handle into a Context's arena. Two Nodes are equal iff
// they refer to the same expression in the same Context; a Node minted by
// one Context is never valid in another (see errors.BadNode).
type Node struct {
	idx int32
	ctx uint32
}

func (n Node) String() string {
	return fmt.Sprintf("node#%d", n.idx)
}

// IsValid reports whether n has been initialized by a builder call. The
// zero Node is never valid.
func (n Node) IsValid() bool {
	return n.ctx != 0
}

// NodeKind tags the payload carried by an Op.
type NodeKind uint8

const (
	KindConst NodeKind = iota
	KindVar
	KindUnary
	KindBinary
)

// UnaryOp enumerates one-argument math operations.
type UnaryOp uint8

const (
	Neg UnaryOp = iota
	Abs
	Recip
	Sqrt
	Square
	Sin
	Cos
	Exp
)

func (k UnaryOp) String() string {
	switch k {
	case Neg:
		return "neg"
	case Abs:
		return "abs"
	case Recip:
		return "recip"
	case Sqrt:
		return "sqrt"
	case Square:
		return "square"
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Exp:
		return "exp"
	default:
		return "unary?"
	}
}

// BinaryOp enumerates two-argument math operations.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Min
	Max
)

func (k BinaryOp) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "binary?"
	}
}

// Op is the tagged union stored per arena slot. Only the fields relevant to
// Kind are meaningful; the rest are zero.
type Op struct {
	Kind   NodeKind
	Unary  UnaryOp
	Binary BinaryOp
	Const  float64
	VarID  int32
	VarName string
	A, B   Node
}
