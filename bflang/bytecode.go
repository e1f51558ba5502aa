package bflang

type OpCode uint8

const (
	OpInvalid OpCode = iota
	OpMoveRight
	OpMoveLeft
	OpIncCell
	OpDecCell
	OpOutput
	OpInput
	OpJumpIfZero
	OpJumpIfNonZero
)

func (o OpCode) String() string {
	switch o {
	case OpMoveRight:
		return "move-right"
	case OpMoveLeft:
		return "move-left"
	case OpIncCell:
		return "inc-cell"
	case OpDecCell:
		return "dec-cell"
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpJumpIfZero:
		return "jump-if-zero"
	case OpJumpIfNonZero:
		return "jump-if-non-zero"
	}
	return "invalid"
}

// countable reports whether adjacent instructions of this kind may be
// merged into one instruction carrying a repeat count.
func (o OpCode) countable() bool {
	switch o {
	case OpMoveRight, OpMoveLeft, OpIncCell, OpDecCell:
		return true
	}
	return false
}

// Instruction is one unit of compiled byte code. Arg is the repeat
// count for the four countable kinds (always >= 1), and the program
// index of the matching partner for the two jump kinds.
type Instruction struct {
	Op  OpCode
	Arg int
	Pos Pos
}

// Program is an ordered instruction sequence. It is immutable once
// compiled; every jump Arg is a valid index into the same Program.
type Program []Instruction
