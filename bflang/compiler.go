package bflang

// Compile validates the source structure and translates it into byte
// code. One instruction is emitted per recognized symbol, so token
// indices and program indices coincide, and the bracket pair mapping
// carries over as jump targets unchanged.
//
// Jump semantics: jump-if-zero transfers control to just after its
// matching jump-if-non-zero when the current cell is zero;
// jump-if-non-zero transfers control to just after its matching
// jump-if-zero when the current cell is non-zero. Together they form
// a "while cell != 0" loop.
func Compile(src *Source) (Program, error) {
	tokens := src.Tokens()
	pairs, err := MatchBrackets(tokens)
	if err != nil {
		return nil, err
	}
	prog := make(Program, 0, len(tokens))
	for i, token := range tokens {
		inst := Instruction{
			Op:  token.Op,
			Arg: 1,
			Pos: token.Pos,
		}
		switch token.Op {
		case OpJumpIfZero, OpJumpIfNonZero:
			inst.Arg = pairs[i]
		}
		prog = append(prog, inst)
	}
	return prog, nil
}
