package bflang

import (
	"io"

	"github.com/reusee/bfk/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// MakeMachine constructs machines sharing the scope's logger.
type MakeMachine func(tapeSize int, input io.Reader, output io.Writer) *Machine

func (Module) MakeMachine(
	logger logs.Logger,
) MakeMachine {
	return func(tapeSize int, input io.Reader, output io.Writer) *Machine {
		m := NewMachine(tapeSize, input, output)
		m.Logger = logger
		return m
	}
}
