package eval

import "surfacer/internal/ssa"

// Simplify evaluates tape's interval bound over [x, y, z] (and vars), then
// collapses every Min/Max that resolved to a single side into a Copy of
// the surviving operand and drops whatever becomes unreachable from the
// root. The returned tape is exactly equivalent to the original for any
// point inside the given bounds; outside them it may diverge, since the
// dropped side of a resolved Min/Max is never evaluated.
func Simplify(tape ssa.Tape, x, y, z Interval, vars []Interval) (ssa.Tape, Interval) {
	root, choices := EvalIntervalSSA(tape, x, y, z, vars)

	rewritten := make(ssa.Tape, len(tape))
	copy(rewritten, tape)
	for i, inst := range rewritten {
		if !inst.Op.IsMinMax() {
			continue
		}
		switch choices[i] {
		case ChoiceLeft:
			rewritten[i] = ssa.Instruction{Op: ssa.OpCopyReg, A: inst.A}
		case ChoiceRight:
			if inst.Op == ssa.OpMinRegReg || inst.Op == ssa.OpMaxRegReg {
				rewritten[i] = ssa.Instruction{Op: ssa.OpCopyReg, A: inst.B}
			} else {
				rewritten[i] = ssa.Instruction{Op: ssa.OpCopyImm, Imm: inst.Imm}
			}
		}
	}

	return compact(rewritten, rewritten.Reachable()), root
}

// compact drops every instruction not marked live and renumbers the
// survivors into a dense 0..n-1 range, remapping operand references
// accordingly. The root (always index 0, always live) stays at index 0.
func compact(tape ssa.Tape, live []bool) ssa.Tape {
	newIndex := make([]uint32, len(tape))
	out := make(ssa.Tape, 0, len(tape))
	for i, inst := range tape {
		if !live[i] {
			continue
		}
		newIndex[i] = uint32(len(out))
		out = append(out, inst)
	}
	for i := range out {
		switch out[i].Op.Arity() {
		case 1:
			out[i].A = newIndex[out[i].A]
		case 2:
			out[i].A = newIndex[out[i].A]
			out[i].B = newIndex[out[i].B]
		}
	}
	return out
}
