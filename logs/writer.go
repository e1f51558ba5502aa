package logs

import (
	"io"
	"os"
)

// Writer is where the text handler writes. Stderr keeps log lines out
// of program output on stdout.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
