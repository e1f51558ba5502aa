package bflang

import (
	"io"

	"github.com/reusee/bfk/logs"
)

type MachineState uint8

const (
	StateReady MachineState = iota
	StateRunning
	StateHalted
	StateFailed
)

func (s MachineState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

const DefaultTapeSize = 60000

// Machine owns the tape, the data pointer and the instruction
// pointer. It is exclusively owned by its caller; only one program may
// be in flight on a Machine at a time, and a Machine may be reused
// sequentially across runs via Reset.
//
// The tape is fixed-size. Moving the data pointer outside it fails the
// run with TapeOutOfBounds. Cell arithmetic wraps modulo 256. On end
// of input the current cell is set to zero and the run continues.
type Machine struct {
	Input  io.Reader
	Output io.Writer
	Logger logs.Logger

	// Trace, when set, observes every dispatched instruction.
	Trace func(op OpCode)

	cells    []byte
	dataPtr  int
	instrPtr int
	state    MachineState
	err      error
}

func NewMachine(tapeSize int, input io.Reader, output io.Writer) *Machine {
	if tapeSize <= 0 {
		tapeSize = DefaultTapeSize
	}
	return &Machine{
		Input:  input,
		Output: output,
		cells:  make([]byte, tapeSize),
	}
}

// Reset clears the tape and both pointers without reallocating the
// underlying storage. A failed machine is reusable after Reset.
func (m *Machine) Reset() {
	clear(m.cells)
	m.dataPtr = 0
	m.instrPtr = 0
	m.state = StateReady
	m.err = nil
}

func (m *Machine) State() MachineState {
	return m.state
}

// Err returns the error that failed the last run, if any.
func (m *Machine) Err() error {
	return m.err
}

func (m *Machine) DataPtr() int {
	return m.dataPtr
}

func (m *Machine) InstrPtr() int {
	return m.instrPtr
}

// Cell returns the byte at the data pointer.
func (m *Machine) Cell() byte {
	return m.cells[m.dataPtr]
}

// Cells returns a copy of the tape.
func (m *Machine) Cells() []byte {
	cells := make([]byte, len(m.cells))
	copy(cells, m.cells)
	return cells
}

// EvalSource runs the program by dispatching directly on the
// recognized symbols, resolving jumps through the bracket pair
// mapping. It is observably equivalent to compiling first and calling
// EvalProgram.
func (m *Machine) EvalSource(src *Source) error {
	tokens := src.Tokens()
	pairs, err := MatchBrackets(tokens)
	if err != nil {
		return err
	}

	m.Reset()
	m.state = StateRunning
	if m.Logger != nil {
		m.Logger.Debug("eval source", "name", src.Name, "symbols", len(tokens))
	}

	for m.instrPtr < len(tokens) {
		token := tokens[m.instrPtr]
		if m.Trace != nil {
			m.Trace(token.Op)
		}

		var err error
		switch token.Op {

		case OpMoveRight:
			err = m.moveRight(1, token.Pos)
			m.instrPtr++

		case OpMoveLeft:
			err = m.moveLeft(1, token.Pos)
			m.instrPtr++

		case OpIncCell:
			m.incCell(1)
			m.instrPtr++

		case OpDecCell:
			m.decCell(1)
			m.instrPtr++

		case OpOutput:
			err = m.writeOutput()
			m.instrPtr++

		case OpInput:
			err = m.readInput()
			m.instrPtr++

		case OpJumpIfZero:
			if m.cells[m.dataPtr] == 0 {
				m.instrPtr = pairs[m.instrPtr] + 1
			} else {
				m.instrPtr++
			}

		case OpJumpIfNonZero:
			if m.cells[m.dataPtr] != 0 {
				m.instrPtr = pairs[m.instrPtr] + 1
			} else {
				m.instrPtr++
			}

		}

		if err != nil {
			return m.fail(err)
		}
	}

	m.state = StateHalted
	return nil
}

// EvalProgram runs compiled, optionally compressed byte code. Counted
// instructions apply their whole run in one step; the observable
// state afterwards matches that many sequential single steps.
func (m *Machine) EvalProgram(prog Program) error {
	m.Reset()
	m.state = StateRunning
	if m.Logger != nil {
		m.Logger.Debug("eval byte code", "instructions", len(prog))
	}

	for m.instrPtr < len(prog) {
		inst := prog[m.instrPtr]
		if m.Trace != nil {
			m.Trace(inst.Op)
		}

		var err error
		switch inst.Op {

		case OpMoveRight:
			err = m.moveRight(inst.Arg, inst.Pos)
			m.instrPtr++

		case OpMoveLeft:
			err = m.moveLeft(inst.Arg, inst.Pos)
			m.instrPtr++

		case OpIncCell:
			m.incCell(inst.Arg)
			m.instrPtr++

		case OpDecCell:
			m.decCell(inst.Arg)
			m.instrPtr++

		case OpOutput:
			err = m.writeOutput()
			m.instrPtr++

		case OpInput:
			err = m.readInput()
			m.instrPtr++

		case OpJumpIfZero:
			if m.cells[m.dataPtr] == 0 {
				m.instrPtr = inst.Arg + 1
			} else {
				m.instrPtr++
			}

		case OpJumpIfNonZero:
			if m.cells[m.dataPtr] != 0 {
				m.instrPtr = inst.Arg + 1
			} else {
				m.instrPtr++
			}

		}

		if err != nil {
			return m.fail(err)
		}
	}

	m.state = StateHalted
	return nil
}

func (m *Machine) fail(err error) error {
	m.state = StateFailed
	m.err = err
	if m.Logger != nil {
		m.Logger.Error("run failed", "error", err)
	}
	return err
}

func (m *Machine) moveRight(n int, pos Pos) error {
	ptr := m.dataPtr + n
	if ptr >= len(m.cells) {
		return TapeOutOfBounds{
			Ptr:  ptr,
			Size: len(m.cells),
			Pos:  pos,
		}
	}
	m.dataPtr = ptr
	return nil
}

func (m *Machine) moveLeft(n int, pos Pos) error {
	ptr := m.dataPtr - n
	if ptr < 0 {
		return TapeOutOfBounds{
			Ptr:  ptr,
			Size: len(m.cells),
			Pos:  pos,
		}
	}
	m.dataPtr = ptr
	return nil
}

func (m *Machine) incCell(n int) {
	m.cells[m.dataPtr] += byte(n)
}

func (m *Machine) decCell(n int) {
	m.cells[m.dataPtr] -= byte(n)
}

func (m *Machine) writeOutput() error {
	if m.Output == nil {
		return nil
	}
	if _, err := m.Output.Write([]byte{m.cells[m.dataPtr]}); err != nil {
		return OutputWriteError{
			Err: err,
		}
	}
	return nil
}

func (m *Machine) readInput() error {
	if m.Input == nil {
		m.cells[m.dataPtr] = 0
		return nil
	}
	var buf [1]byte
	_, err := io.ReadFull(m.Input, buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		m.cells[m.dataPtr] = 0
		return nil
	}
	if err != nil {
		return InputReadError{
			Err: err,
		}
	}
	m.cells[m.dataPtr] = buf[0]
	return nil
}
