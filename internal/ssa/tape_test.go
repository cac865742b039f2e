package ssa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/ssa"
)

func TestReachableDropsDeadInstructions(t *testing.T) {
	// tape: 0 = copy(1); 1 = addRegReg(2, 3); 2 = input X; 3 = input Y.
	// Nothing references index 3's sibling index 4, which should read dead.
	tape := ssa.Tape{
		{Op: ssa.OpCopyReg, A: 1},
		{Op: ssa.OpAddRegReg, A: 2, B: 3},
		{Op: ssa.OpInput, Slot: 0},
		{Op: ssa.OpInput, Slot: 1},
		{Op: ssa.OpInput, Slot: 2}, // unreachable from root
	}
	live := tape.Reachable()
	require.Equal(t, []bool{true, true, true, true, false}, live)
}

func TestReachableEmptyTape(t *testing.T) {
	require.Empty(t, ssa.Tape{}.Reachable())
}

func TestRootIsIndexZero(t *testing.T) {
	tape := ssa.Tape{{Op: ssa.OpCopyImm, Imm: 42}}
	require.Equal(t, ssa.OpCopyImm, tape.Root().Op)
}
