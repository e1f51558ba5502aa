package bflang

type Token struct {
	Op  OpCode
	Pos Pos
}

func opForSymbol(c byte) (OpCode, bool) {
	switch c {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncCell, true
	case '-':
		return OpDecCell, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpJumpIfZero, true
	case ']':
		return OpJumpIfNonZero, true
	}
	return 0, false
}
