package regalloc

import (
	"surfacer/internal/errors"
	"surfacer/internal/ssa"
	"surfacer/internal/vmtape"
)

// regOpCode maps a one-register SSA opcode to its vmtape equivalent.
func regOpCode(op ssa.OpCode) vmtape.OpCode {
	switch op {
	case ssa.OpCopyReg:
		return vmtape.OpCopyReg
	case ssa.OpNegReg:
		return vmtape.OpNegReg
	case ssa.OpAbsReg:
		return vmtape.OpAbsReg
	case ssa.OpRecipReg:
		return vmtape.OpRecipReg
	case ssa.OpSqrtReg:
		return vmtape.OpSqrtReg
	case ssa.OpSquareReg:
		return vmtape.OpSquareReg
	case ssa.OpSinReg:
		return vmtape.OpSinReg
	case ssa.OpCosReg:
		return vmtape.OpCosReg
	case ssa.OpExpReg:
		return vmtape.OpExpReg
	default:
		errors.Invariant("regalloc: %d is not a one-register opcode", op)
		return 0
	}
}

// regRegOpCode maps a two-register SSA opcode to its vmtape equivalent.
func regRegOpCode(op ssa.OpCode) vmtape.OpCode {
	switch op {
	case ssa.OpAddRegReg:
		return vmtape.OpAddRegReg
	case ssa.OpSubRegReg:
		return vmtape.OpSubRegReg
	case ssa.OpMulRegReg:
		return vmtape.OpMulRegReg
	case ssa.OpDivRegReg:
		return vmtape.OpDivRegReg
	case ssa.OpMinRegReg:
		return vmtape.OpMinRegReg
	case ssa.OpMaxRegReg:
		return vmtape.OpMaxRegReg
	default:
		errors.Invariant("regalloc: %d is not a two-register opcode", op)
		return 0
	}
}

// regImmOpCode maps a register-immediate SSA opcode to its vmtape
// equivalent.
func regImmOpCode(op ssa.OpCode) vmtape.OpCode {
	switch op {
	case ssa.OpAddRegImm:
		return vmtape.OpAddRegImm
	case ssa.OpSubRegImm:
		return vmtape.OpSubRegImm
	case ssa.OpSubImmReg:
		return vmtape.OpSubImmReg
	case ssa.OpMulRegImm:
		return vmtape.OpMulRegImm
	case ssa.OpDivRegImm:
		return vmtape.OpDivRegImm
	case ssa.OpDivImmReg:
		return vmtape.OpDivImmReg
	case ssa.OpMinRegImm:
		return vmtape.OpMinRegImm
	case ssa.OpMaxRegImm:
		return vmtape.OpMaxRegImm
	default:
		errors.Invariant("regalloc: %d is not a register-immediate opcode", op)
		return 0
	}
}
