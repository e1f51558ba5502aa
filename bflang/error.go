package bflang

import "fmt"

type SourceLoadError struct {
	Path string
	Err  error
}

func (e SourceLoadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e SourceLoadError) Unwrap() error {
	return e.Err
}

type UnmatchedOpenBracket struct {
	Pos Pos
}

func (e UnmatchedOpenBracket) Error() string {
	return fmt.Sprintf("unmatched [ at %s", e.Pos)
}

type UnmatchedCloseBracket struct {
	Pos Pos
}

func (e UnmatchedCloseBracket) Error() string {
	return fmt.Sprintf("unmatched ] at %s", e.Pos)
}

type TapeOutOfBounds struct {
	Ptr  int
	Size int
	Pos  Pos
}

func (e TapeOutOfBounds) Error() string {
	return fmt.Sprintf("data pointer %d out of tape bounds [0, %d) at %s", e.Ptr, e.Size, e.Pos)
}

type InputReadError struct {
	Err error
}

func (e InputReadError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e InputReadError) Unwrap() error {
	return e.Err
}

type OutputWriteError struct {
	Err error
}

func (e OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e OutputWriteError) Unwrap() error {
	return e.Err
}
