package context

import (
	"sort"

	"surfacer/internal/ssa"
)

// GetSSATape lowers the graph reachable from root into an SSA tape. A
// reachability walk from root collects every reachable node, and the nodes
// are then numbered in descending arena order: the root lands at index 0
// and every operand sits at a higher index than each instruction that
// reads it, which is the order a reverse evaluation walk needs. Const
// operands of Unary/Binary ops
// are folded into *Imm instruction variants rather than materialized as
// their own instruction, and nodes unreachable from root are never
// emitted.
func (c *Context) GetSSATape(root Node) (ssa.Tape, error) {
	if err := c.own(root); err != nil {
		return nil, err
	}

	order := []Node{root}
	index := map[Node]int{root: 0}

	// visitOperand enqueues n for emission unless n is a Const, in which
	// case the caller inlines its value as an immediate instead.
	visitOperand := func(n Node) {
		if c.op(n).Kind == KindConst {
			return
		}
		if _, seen := index[n]; seen {
			return
		}
		index[n] = len(order)
		order = append(order, n)
	}

	for i := 0; i < len(order); i++ {
		op := c.op(order[i])
		switch op.Kind {
		case KindUnary:
			// Context invariant: a surviving Unary's argument is never
			// Const (it would have folded at build time).
			visitOperand(op.A)
		case KindBinary:
			visitOperand(op.A)
			visitOperand(op.B)
		}
	}

	// An operand always has a smaller arena index than its consumer, so
	// sorting by descending arena index yields a topological order.
	sort.Slice(order, func(i, j int) bool { return order[i].idx > order[j].idx })
	for i, n := range order {
		index[n] = i
	}

	tape := make(ssa.Tape, len(order))
	for i, n := range order {
		tape[i] = c.lowerNode(n, index)
	}
	return tape, nil
}

func (c *Context) lowerNode(n Node, index map[Node]int) ssa.Instruction {
	op := c.op(n)
	switch op.Kind {
	case KindConst:
		return ssa.Instruction{Op: ssa.OpCopyImm, Imm: float32(op.Const)}
	case KindVar:
		switch n {
		case c.x:
			return ssa.Instruction{Op: ssa.OpInput, Slot: 0}
		case c.y:
			return ssa.Instruction{Op: ssa.OpInput, Slot: 1}
		case c.z:
			return ssa.Instruction{Op: ssa.OpInput, Slot: 2}
		default:
			return ssa.Instruction{Op: ssa.OpVar, VarID: uint32(op.VarID)}
		}
	case KindUnary:
		return ssa.Instruction{Op: unaryOpCode(op.Unary), A: uint32(index[op.A])}
	case KindBinary:
		return c.lowerBinary(op, index)
	default:
		panic("context: unreachable node kind")
	}
}

func (c *Context) lowerBinary(op Op, index map[Node]int) ssa.Instruction {
	// Context invariant: Binary never has both operands Const (that would
	// have folded at build time), so at most one side needs inlining.
	if v, ok := c.ConstValue(op.A); ok {
		if code, ok := immRegOpCode(op.Binary); ok {
			return ssa.Instruction{Op: code, A: uint32(index[op.B]), Imm: float32(v)}
		}
		// Commutative: treat the constant as the right-hand immediate.
		return ssa.Instruction{Op: regImmOpCode(op.Binary), A: uint32(index[op.B]), Imm: float32(v)}
	}
	if v, ok := c.ConstValue(op.B); ok {
		return ssa.Instruction{Op: regImmOpCode(op.Binary), A: uint32(index[op.A]), Imm: float32(v)}
	}
	return ssa.Instruction{Op: regRegOpCode(op.Binary), A: uint32(index[op.A]), B: uint32(index[op.B])}
}

func unaryOpCode(k UnaryOp) ssa.OpCode {
	switch k {
	case Neg:
		return ssa.OpNegReg
	case Abs:
		return ssa.OpAbsReg
	case Recip:
		return ssa.OpRecipReg
	case Sqrt:
		return ssa.OpSqrtReg
	case Square:
		return ssa.OpSquareReg
	case Sin:
		return ssa.OpSinReg
	case Cos:
		return ssa.OpCosReg
	case Exp:
		return ssa.OpExpReg
	default:
		panic("context: unknown unary op")
	}
}

func regRegOpCode(k BinaryOp) ssa.OpCode {
	switch k {
	case Add:
		return ssa.OpAddRegReg
	case Sub:
		return ssa.OpSubRegReg
	case Mul:
		return ssa.OpMulRegReg
	case Div:
		return ssa.OpDivRegReg
	case Min:
		return ssa.OpMinRegReg
	case Max:
		return ssa.OpMaxRegReg
	default:
		panic("context: unknown binary op")
	}
}

func regImmOpCode(k BinaryOp) ssa.OpCode {
	switch k {
	case Add:
		return ssa.OpAddRegImm
	case Sub:
		return ssa.OpSubRegImm
	case Mul:
		return ssa.OpMulRegImm
	case Div:
		return ssa.OpDivRegImm
	case Min:
		return ssa.OpMinRegImm
	case Max:
		return ssa.OpMaxRegImm
	default:
		panic("context: unknown binary op")
	}
}

// immRegOpCode returns the imm-op-reg opcode for non-commutative ops
// (Sub, Div), where the constant is the left-hand side.
func immRegOpCode(k BinaryOp) (ssa.OpCode, bool) {
	switch k {
	case Sub:
		return ssa.OpSubImmReg, true
	case Div:
		return ssa.OpDivImmReg, true
	default:
		return 0, false
	}
}
