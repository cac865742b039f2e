package eval

import "surfacer/internal/ssa"

// EvalIntervalSSA evaluates tape over the given coordinate and variable
// intervals, returning the root's bound and one Choice per instruction.
// Only Min/Max instructions produce a meaningful Choice; every other
// index holds ChoiceBoth, which Simplify ignores.
//
// This runs directly on the pre-allocation SSA tape rather than a
// register-allocated one, so simplification never needs to translate
// register/memory slots back to the SSA indices they came from.
func EvalIntervalSSA(tape ssa.Tape, x, y, z Interval, vars []Interval) (Interval, []Choice) {
	vals := make([]Interval, len(tape))
	choices := make([]Choice, len(tape))

	for i := len(tape) - 1; i >= 0; i-- {
		inst := tape[i]
		switch inst.Op {
		case ssa.OpInput:
			switch inst.Slot {
			case 0:
				vals[i] = x
			case 1:
				vals[i] = y
			case 2:
				vals[i] = z
			}
		case ssa.OpVar:
			vals[i] = vars[inst.VarID]
		case ssa.OpCopyImm:
			vals[i] = constInterval(inst.Imm)
		case ssa.OpCopyReg:
			vals[i] = vals[inst.A]
		case ssa.OpNegReg:
			vals[i] = vals[inst.A].Neg()
		case ssa.OpAbsReg:
			vals[i] = vals[inst.A].Abs()
		case ssa.OpRecipReg:
			vals[i] = vals[inst.A].Recip()
		case ssa.OpSqrtReg:
			vals[i] = vals[inst.A].Sqrt()
		case ssa.OpSquareReg:
			vals[i] = vals[inst.A].Square()
		case ssa.OpSinReg:
			vals[i] = vals[inst.A].Sin()
		case ssa.OpCosReg:
			vals[i] = vals[inst.A].Cos()
		case ssa.OpExpReg:
			vals[i] = vals[inst.A].Exp()
		case ssa.OpAddRegReg:
			vals[i] = vals[inst.A].Add(vals[inst.B])
		case ssa.OpSubRegReg:
			vals[i] = vals[inst.A].Sub(vals[inst.B])
		case ssa.OpMulRegReg:
			vals[i] = vals[inst.A].Mul(vals[inst.B])
		case ssa.OpDivRegReg:
			vals[i] = vals[inst.A].Div(vals[inst.B])
		case ssa.OpMinRegReg:
			vals[i], choices[i] = vals[inst.A].Min(vals[inst.B])
		case ssa.OpMaxRegReg:
			vals[i], choices[i] = vals[inst.A].Max(vals[inst.B])
		case ssa.OpAddRegImm:
			vals[i] = vals[inst.A].Add(constInterval(inst.Imm))
		case ssa.OpSubRegImm:
			vals[i] = vals[inst.A].Sub(constInterval(inst.Imm))
		case ssa.OpSubImmReg:
			vals[i] = constInterval(inst.Imm).Sub(vals[inst.A])
		case ssa.OpMulRegImm:
			vals[i] = vals[inst.A].Mul(constInterval(inst.Imm))
		case ssa.OpDivRegImm:
			vals[i] = vals[inst.A].Div(constInterval(inst.Imm))
		case ssa.OpDivImmReg:
			vals[i] = constInterval(inst.Imm).Div(vals[inst.A])
		case ssa.OpMinRegImm:
			vals[i], choices[i] = vals[inst.A].Min(constInterval(inst.Imm))
		case ssa.OpMaxRegImm:
			vals[i], choices[i] = vals[inst.A].Max(constInterval(inst.Imm))
		}
	}
	return vals[0], choices
}
