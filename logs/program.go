package logs

import "context"

type programKeyType struct{}

// ProgramKey carries the name of the program being run, so every log
// record of one run is attributable to it.
var ProgramKey programKeyType

func WithProgram(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ProgramKey, name)
}
