// Package regalloc implements the single-pass register allocator: it
// rewrites an SSA tape into a register-machine (vmtape) tape bound to a
// caller-chosen register limit, inserting explicit Load/Store spills when
// the SSA tape needs more live values than there are registers.
//
// The SSA tape is processed in forward array order — index 0 is the root,
// so this walk visits the root first and leaves last, which is "backwards"
// relative to a normal forward evaluation (root depends on values not yet
// produced). Each step either finds an operand already bound to a
// register or memory slot from an earlier (shallower) consumer, or finds
// it Unassigned and binds it right there — which is also its *last* use
// in true evaluation order, since evaluation walks the resulting VM tape
// in reverse, from the final instruction back to the first.
package regalloc

import (
	"surfacer/internal/errors"
	"surfacer/internal/ssa"
	"surfacer/internal/vmtape"
)

const unassigned = ^uint32(0)

type allocKind int

const (
	allocUnassigned allocKind = iota
	allocRegister
	allocMemory
)

type allocation struct {
	kind allocKind
	reg  uint8
	mem  uint32
}

// allocator carries the mutable state of a single allocation pass.
type allocator struct {
	allocations []uint32 // per SSA index: register (<regLimit), memory (>=regLimit), or unassigned
	registers   []uint32 // per register: bound SSA index, or unassigned
	lru         *lru
	regLimit    uint8

	spareRegisters []uint8
	spareMemory    []uint32

	out vmtape.Tape
}

func newAllocator(regLimit uint8, ssaLen int) *allocator {
	a := &allocator{
		allocations: make([]uint32, ssaLen),
		registers:   make([]uint32, regLimit),
		lru:         newLRU(regLimit),
		regLimit:    regLimit,
		out:         vmtape.Tape{RegisterLimit: regLimit, SlotCount: 1},
	}
	for i := range a.allocations {
		a.allocations[i] = unassigned
	}
	for i := range a.registers {
		a.registers[i] = unassigned
	}
	a.bindRegister(0, 0)
	return a
}

// Allocate lowers tape (whose index 0 is the root) into a register-machine
// tape over registerLimit registers.
func Allocate(tape ssa.Tape, registerLimit uint8) (*vmtape.Tape, error) {
	if registerLimit == 0 {
		return nil, errors.NewBadConfig("register limit must be at least 1")
	}
	a := newAllocator(registerLimit, len(tape))
	for i, inst := range tape {
		a.lower(uint32(i), inst)
	}
	out := a.out
	return &out, nil
}

func (a *allocator) emit(inst vmtape.Instruction) {
	a.out.Instructions = append(a.out.Instructions, inst)
}

func (a *allocator) getAllocation(n uint32) allocation {
	v := a.allocations[n]
	switch {
	case v == unassigned:
		return allocation{kind: allocUnassigned}
	case v < uint32(a.regLimit):
		a.lru.poke(uint8(v))
		return allocation{kind: allocRegister, reg: uint8(v)}
	default:
		return allocation{kind: allocMemory, mem: v}
	}
}

func (a *allocator) getMemory() uint32 {
	if n := len(a.spareMemory); n > 0 {
		m := a.spareMemory[n-1]
		a.spareMemory = a.spareMemory[:n-1]
		return m
	}
	m := a.out.SlotCount
	a.out.SlotCount++
	if m < uint32(a.regLimit) {
		errors.Invariant("fresh memory slot %d collides with register space", m)
	}
	return m
}

func (a *allocator) oldestReg() uint8 { return a.lru.pop() }

func (a *allocator) getSpareRegister() (uint8, bool) {
	if n := len(a.spareRegisters); n > 0 {
		r := a.spareRegisters[n-1]
		a.spareRegisters = a.spareRegisters[:n-1]
		return r, true
	}
	if a.out.SlotCount < uint32(a.regLimit) {
		reg := uint8(a.out.SlotCount)
		a.out.SlotCount++
		return reg, true
	}
	return 0, false
}

// getRegister returns a free register, evicting the least-recently-used
// one (spilling it to a fresh memory slot with a Load) if none is spare.
func (a *allocator) getRegister() uint8 {
	if reg, ok := a.getSpareRegister(); ok {
		a.lru.poke(reg)
		return reg
	}
	reg := a.oldestReg()
	mem := a.getMemory()

	prevNode := a.registers[reg]
	a.allocations[prevNode] = mem
	a.registers[reg] = unassigned

	a.emit(vmtape.Load(reg, mem))
	return reg
}

func (a *allocator) rebindRegister(n uint32, reg uint8) {
	prevNode := a.registers[reg]
	a.allocations[prevNode] = unassigned

	a.registers[reg] = n
	a.allocations[n] = uint32(reg)
	a.lru.poke(reg)
}

func (a *allocator) bindRegister(n uint32, reg uint8) {
	a.registers[reg] = n
	a.allocations[n] = uint32(reg)
	a.lru.poke(reg)
}

func (a *allocator) releaseReg(reg uint8) {
	node := a.registers[reg]
	a.registers[reg] = unassigned
	a.spareRegisters = append(a.spareRegisters, reg)
	a.allocations[node] = unassigned
}

func (a *allocator) releaseMem(mem uint32) {
	a.spareMemory = append(a.spareMemory, mem)
}

func (a *allocator) pushStore(reg uint8, mem uint32) {
	a.emit(vmtape.Store(reg, mem))
	a.releaseMem(mem)
}

// getOutReg returns the register that out's value must land in, first
// evicting it from memory (with a Store recorded so the forward-executed
// VM tape re-spills it) if it wasn't already bound to a register.
func (a *allocator) getOutReg(out uint32) uint8 {
	alloc := a.getAllocation(out)
	switch alloc.kind {
	case allocRegister:
		return alloc.reg
	case allocMemory:
		rA := a.getRegister()
		a.pushStore(rA, alloc.mem)
		a.bindRegister(out, rA)
		return rA
	default:
		errors.Invariant("ssa index %d has no output allocation", out)
		return 0
	}
}

func (a *allocator) lower(out uint32, inst ssa.Instruction) {
	switch inst.Op {
	case ssa.OpVar:
		a.opOutOnly(out, func(o uint8) vmtape.Instruction { return vmtape.Var(o, inst.VarID) })
	case ssa.OpInput:
		a.opOutOnly(out, func(o uint8) vmtape.Instruction { return vmtape.Input(o, inst.Slot) })
	case ssa.OpCopyImm:
		a.opOutOnly(out, func(o uint8) vmtape.Instruction { return vmtape.CopyImm(o, inst.Imm) })

	case ssa.OpCopyReg, ssa.OpNegReg, ssa.OpAbsReg, ssa.OpRecipReg, ssa.OpSqrtReg,
		ssa.OpSquareReg, ssa.OpSinReg, ssa.OpCosReg, ssa.OpExpReg:
		code := regOpCode(inst.Op)
		a.opRegFn(out, inst.A, func(o, arg uint8) vmtape.Instruction {
			return vmtape.Reg(code, o, arg)
		})

	case ssa.OpAddRegImm, ssa.OpSubRegImm, ssa.OpSubImmReg, ssa.OpMulRegImm,
		ssa.OpDivRegImm, ssa.OpDivImmReg, ssa.OpMinRegImm, ssa.OpMaxRegImm:
		code := regImmOpCode(inst.Op)
		imm := inst.Imm
		a.opRegFn(out, inst.A, func(o, arg uint8) vmtape.Instruction {
			return vmtape.RegImm(code, o, arg, imm)
		})

	case ssa.OpAddRegReg, ssa.OpSubRegReg, ssa.OpMulRegReg, ssa.OpDivRegReg,
		ssa.OpMinRegReg, ssa.OpMaxRegReg:
		code := regRegOpCode(inst.Op)
		a.opRegReg(out, inst.A, inst.B, func(o, l, r uint8) vmtape.Instruction {
			return vmtape.RegReg(code, o, l, r)
		})

	default:
		errors.Invariant("unknown ssa opcode %d", inst.Op)
	}
}

// opOutOnly lowers a leaf op (Input/Var/CopyImm) that has no SSA operands.
func (a *allocator) opOutOnly(out uint32, build func(uint8) vmtape.Instruction) {
	rX := a.getOutReg(out)
	a.emit(build(rX))
	a.releaseReg(rX)
}

// opRegFn lowers a one-operand op. There are six reachable configurations
// for (out, arg)'s allocations; see the package doc and DESIGN.md for the
// correspondence with the reference allocator's table.
func (a *allocator) opRegFn(out, arg uint32, build func(out, arg uint8) vmtape.Instruction) {
	rX := a.getOutReg(out)
	switch alloc := a.getAllocation(arg); alloc.kind {
	case allocRegister:
		rY := alloc.reg
		a.emit(build(rX, rY))
		a.releaseReg(rX)
	case allocMemory:
		a.emit(build(rX, rX))
		a.rebindRegister(arg, rX)
		a.pushStore(rX, alloc.mem)
	case allocUnassigned:
		a.emit(build(rX, rX))
		a.rebindRegister(arg, rX)
	}
}

// opRegReg lowers a two-operand op. All 18 configurations of
// (out, lhs, rhs)'s allocations are enumerated explicitly below.
func (a *allocator) opRegReg(out, lhs, rhs uint32, build func(out, l, r uint8) vmtape.Instruction) {
	rX := a.getOutReg(out)
	L := a.getAllocation(lhs)
	R := a.getAllocation(rhs)

	switch {
	case L.kind == allocRegister && R.kind == allocRegister:
		a.emit(build(rX, L.reg, R.reg))
		a.releaseReg(rX)

	case L.kind == allocMemory && R.kind == allocRegister:
		a.emit(build(rX, rX, R.reg))
		a.rebindRegister(lhs, rX)
		a.pushStore(rX, L.mem)

	case L.kind == allocRegister && R.kind == allocMemory:
		a.emit(build(rX, L.reg, rX))
		a.rebindRegister(rhs, rX)
		a.pushStore(rX, R.mem)

	case L.kind == allocMemory && R.kind == allocMemory:
		rA := rX
		if lhs != rhs {
			rA = a.getRegister()
		}
		a.emit(build(rX, rX, rA))
		a.rebindRegister(lhs, rX)
		if lhs != rhs {
			a.bindRegister(rhs, rA)
		}
		a.pushStore(rX, L.mem)
		if lhs != rhs {
			a.pushStore(rA, R.mem)
		}

	case L.kind == allocUnassigned && R.kind == allocRegister:
		a.emit(build(rX, rX, R.reg))
		a.rebindRegister(lhs, rX)

	case L.kind == allocRegister && R.kind == allocUnassigned:
		a.emit(build(rX, L.reg, rX))
		a.rebindRegister(rhs, rX)

	case L.kind == allocUnassigned && R.kind == allocUnassigned:
		rA := rX
		if lhs != rhs {
			rA = a.getRegister()
		}
		a.emit(build(rX, rX, rA))
		a.rebindRegister(lhs, rX)
		if lhs != rhs {
			a.bindRegister(rhs, rA)
		}

	case L.kind == allocUnassigned && R.kind == allocMemory:
		rA := a.getRegister()
		a.emit(build(rX, rX, rA))
		a.rebindRegister(lhs, rX)
		if lhs != rhs {
			a.bindRegister(rhs, rA)
		}
		a.pushStore(rA, R.mem)

	case L.kind == allocMemory && R.kind == allocUnassigned:
		rA := a.getRegister()
		a.emit(build(rX, rA, rX))
		a.bindRegister(lhs, rA)
		if lhs != rhs {
			a.rebindRegister(rhs, rX)
		}
		a.pushStore(rA, L.mem)
	}
}
