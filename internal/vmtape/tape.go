package vmtape

import "math"

// Instruction is a single register-machine op, packed to 8 bytes: a 1-byte
// opcode, three 1-byte register fields, and a 4-byte payload reinterpreted
// per opcode as an f32 immediate, a memory-slot index, or a variable id —
// the same "pack everything behind one fixed-width word" idea as a
// NaN-boxed value, just for instructions instead of runtime values.
type Instruction struct {
	Op      OpCode
	Out     uint8
	A       uint8
	B       uint8
	Payload uint32
}

// Imm decodes Payload as the f32 immediate used by *Imm opcodes.
func (i Instruction) Imm() float32 { return math.Float32frombits(i.Payload) }

// Mem decodes Payload as a memory slot index, used by Load/Store.
func (i Instruction) Mem() uint32 { return i.Payload }

// VarID decodes Payload as a variable id, used by OpVar.
func (i Instruction) VarID() uint32 { return i.Payload }

func imm(f float32) uint32 { return math.Float32bits(f) }

func RegReg(op OpCode, out, a, b uint8) Instruction {
	return Instruction{Op: op, Out: out, A: a, B: b}
}

func RegImm(op OpCode, out, a uint8, f float32) Instruction {
	return Instruction{Op: op, Out: out, A: a, Payload: imm(f)}
}

func Reg(op OpCode, out, a uint8) Instruction {
	return Instruction{Op: op, Out: out, A: a}
}

func Input(out, slot uint8) Instruction {
	return Instruction{Op: OpInput, Out: out, A: slot}
}

func Var(out uint8, varID uint32) Instruction {
	return Instruction{Op: OpVar, Out: out, Payload: varID}
}

func CopyImm(out uint8, f float32) Instruction {
	return Instruction{Op: OpCopyImm, Out: out, Payload: imm(f)}
}

func Load(out uint8, mem uint32) Instruction {
	return Instruction{Op: OpLoad, Out: out, Payload: mem}
}

func Store(src uint8, mem uint32) Instruction {
	return Instruction{Op: OpStore, Out: src, Payload: mem}
}

// Tape is the finished, register-allocated program, over a machine with
// RegisterLimit fast registers and SlotCount total addressable
// memory+register slots (SlotCount - RegisterLimit of them are overflow
// memory). Instructions keeps the same index convention as the ssa.Tape
// it was lowered from: index 0 holds the root's instruction, and indices
// increase toward the leaves. An evaluator therefore executes
// Instructions back to front — last index first, index 0 last — so that
// every operand is computed before the instruction that consumes it; once
// that walk reaches index 0, the answer is in register 0.
type Tape struct {
	Instructions []Instruction
	RegisterLimit uint8
	SlotCount     uint32
}

// Len returns the number of instructions in the tape.
func (t *Tape) Len() int { return len(t.Instructions) }
