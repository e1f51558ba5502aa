package bflang

// Compress merges every maximal run of identical adjacent countable
// instructions into one instruction carrying the summed repeat count.
// Output, input and both jump kinds are never merged and always end a
// run.
//
// Merging shortens the program, so jump targets are remapped through
// an old-index to new-index table built during the pass. Brackets are
// never merged, which makes the remapping exact.
func Compress(prog Program) Program {
	if len(prog) == 0 {
		return prog
	}

	compressed := make(Program, 0, len(prog))
	newIndex := make([]int, len(prog))

	for i := 0; i < len(prog); {
		inst := prog[i]
		j := i + 1
		if inst.Op.countable() {
			for j < len(prog) && prog[j].Op == inst.Op {
				inst.Arg += prog[j].Arg
				j++
			}
		}
		for k := i; k < j; k++ {
			newIndex[k] = len(compressed)
		}
		compressed = append(compressed, inst)
		i = j
	}

	for i, inst := range compressed {
		switch inst.Op {
		case OpJumpIfZero, OpJumpIfNonZero:
			compressed[i].Arg = newIndex[inst.Arg]
		}
	}

	return compressed
}
