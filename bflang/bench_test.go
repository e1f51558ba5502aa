package bflang

import (
	"strings"
	"testing"
)

// a loop-heavy program exercising counted instructions
const benchProgram = "++++++++++[>++++++++++[>+>+<<-]>>[-]<<<-]"

func BenchmarkEvalSource(b *testing.B) {
	src := NewSource("bench.bf", benchProgram)
	m := NewMachine(0, nil, nil)
	for b.Loop() {
		if err := m.EvalSource(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvalProgram(b *testing.B) {
	src := NewSource("bench.bf", benchProgram)
	prog, err := Compile(src)
	if err != nil {
		b.Fatal(err)
	}
	m := NewMachine(0, nil, nil)
	for b.Loop() {
		if err := m.EvalProgram(prog); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvalCompressed(b *testing.B) {
	src := NewSource("bench.bf", benchProgram)
	prog, err := Compile(src)
	if err != nil {
		b.Fatal(err)
	}
	compressed := Compress(prog)
	m := NewMachine(0, nil, nil)
	for b.Loop() {
		if err := m.EvalProgram(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	content := strings.Repeat(benchProgram, 10)
	src := NewSource("bench.bf", content)
	for b.Loop() {
		if _, err := Compile(src); err != nil {
			b.Fatal(err)
		}
	}
}
