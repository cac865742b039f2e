package ssa

// Instruction is one SSA op. Its own position in a Tape is its output
// index; operands A and B (when the opcode's Arity calls for them) refer
// to other indices in the same Tape. Every field not used by Op is zero.
type Instruction struct {
	Op    OpCode
	A, B  uint32
	Imm   float32
	Slot  uint8  // OpInput: 0=X, 1=Y, 2=Z
	VarID uint32 // OpVar
}

// Tape is a flat, topologically ordered instruction stream in single
// static assignment form. By convention index 0 is always the root (the
// function's output); forward iteration over the slice therefore visits
// the root first, and evaluation instead walks the tape in reverse
// (len(t)-1 down to 0) so that every operand has already been computed by
// the time its consumer is reached.
type Tape []Instruction

// Root returns the instruction defining the tape's output value.
func (t Tape) Root() Instruction { return t[0] }

// Reachable returns a bitset, indexed by instruction, marking every
// instruction that the root transitively depends on. For a freshly lowered
// tape every instruction is reachable; simplification and other
// tape-rewriting passes call this after deleting instructions to trim
// newly-dead ones.
func (t Tape) Reachable() []bool {
	live := make([]bool, len(t))
	if len(t) == 0 {
		return live
	}
	live[0] = true
	for i := 0; i < len(t); i++ {
		if !live[i] {
			continue
		}
		inst := t[i]
		switch inst.Op.Arity() {
		case 1:
			live[inst.A] = true
		case 2:
			live[inst.A] = true
			live[inst.B] = true
		}
	}
	return live
}
