// Package eval implements the tape evaluators: point-at-a-time and
// batched float evaluation of the register-allocated VM tape, and
// interval evaluation (with Min/Max choice tracking) and simplification
// of the pre-allocation SSA tape.
package eval

import (
	"math"

	"surfacer/internal/vmtape"
)

// EvalPoint evaluates tape at a single (x, y, z), returning the root's
// value. vars supplies named-variable values indexed by id; it may be nil
// if the tape references no variables.
func EvalPoint(tape *vmtape.Tape, x, y, z float64, vars []float64) float64 {
	slots := make([]float64, tape.SlotCount)
	run(tape, x, y, z, vars, slots)
	return slots[0]
}

// EvalFloatSlice evaluates tape once per point (xs[i], ys[i], zs[i]),
// writing the root's value into out[i]. xs, ys, zs, and out must be the
// same length.
func EvalFloatSlice(tape *vmtape.Tape, xs, ys, zs []float64, vars []float64, out []float64) {
	slots := make([]float64, tape.SlotCount)
	for i := range xs {
		run(tape, xs[i], ys[i], zs[i], vars, slots)
		out[i] = slots[0]
	}
}

// run executes tape back to front into slots, which must have length
// tape.SlotCount; registers and memory share the same slot space, so no
// extra translation is needed between an instruction's register fields
// and its Mem() payload.
func run(tape *vmtape.Tape, x, y, z float64, vars []float64, slots []float64) {
	insts := tape.Instructions
	for i := len(insts) - 1; i >= 0; i-- {
		inst := insts[i]
		switch inst.Op {
		case vmtape.OpInput:
			switch inst.A {
			case 0:
				slots[inst.Out] = x
			case 1:
				slots[inst.Out] = y
			case 2:
				slots[inst.Out] = z
			}
		case vmtape.OpVar:
			slots[inst.Out] = vars[inst.VarID()]
		case vmtape.OpCopyImm:
			slots[inst.Out] = float64(inst.Imm())
		case vmtape.OpCopyReg:
			slots[inst.Out] = slots[inst.A]
		case vmtape.OpNegReg:
			slots[inst.Out] = -slots[inst.A]
		case vmtape.OpAbsReg:
			slots[inst.Out] = math.Abs(slots[inst.A])
		case vmtape.OpRecipReg:
			slots[inst.Out] = 1.0 / slots[inst.A]
		case vmtape.OpSqrtReg:
			slots[inst.Out] = math.Sqrt(slots[inst.A])
		case vmtape.OpSquareReg:
			v := slots[inst.A]
			slots[inst.Out] = v * v
		case vmtape.OpSinReg:
			slots[inst.Out] = math.Sin(slots[inst.A])
		case vmtape.OpCosReg:
			slots[inst.Out] = math.Cos(slots[inst.A])
		case vmtape.OpExpReg:
			slots[inst.Out] = math.Exp(slots[inst.A])
		case vmtape.OpAddRegReg:
			slots[inst.Out] = slots[inst.A] + slots[inst.B]
		case vmtape.OpSubRegReg:
			slots[inst.Out] = slots[inst.A] - slots[inst.B]
		case vmtape.OpMulRegReg:
			slots[inst.Out] = slots[inst.A] * slots[inst.B]
		case vmtape.OpDivRegReg:
			slots[inst.Out] = slots[inst.A] / slots[inst.B]
		case vmtape.OpMinRegReg:
			slots[inst.Out] = math.Min(slots[inst.A], slots[inst.B])
		case vmtape.OpMaxRegReg:
			slots[inst.Out] = math.Max(slots[inst.A], slots[inst.B])
		case vmtape.OpAddRegImm:
			slots[inst.Out] = slots[inst.A] + float64(inst.Imm())
		case vmtape.OpSubRegImm:
			slots[inst.Out] = slots[inst.A] - float64(inst.Imm())
		case vmtape.OpSubImmReg:
			slots[inst.Out] = float64(inst.Imm()) - slots[inst.A]
		case vmtape.OpMulRegImm:
			slots[inst.Out] = slots[inst.A] * float64(inst.Imm())
		case vmtape.OpDivRegImm:
			slots[inst.Out] = slots[inst.A] / float64(inst.Imm())
		case vmtape.OpDivImmReg:
			slots[inst.Out] = float64(inst.Imm()) / slots[inst.A]
		case vmtape.OpMinRegImm:
			slots[inst.Out] = math.Min(slots[inst.A], float64(inst.Imm()))
		case vmtape.OpMaxRegImm:
			slots[inst.Out] = math.Max(slots[inst.A], float64(inst.Imm()))
		case vmtape.OpLoad:
			slots[inst.Out] = slots[inst.Mem()]
		case vmtape.OpStore:
			slots[inst.Mem()] = slots[inst.Out]
		}
	}
}
