package bflang

import "testing"

func TestCompressRun(t *testing.T) {
	src := NewSource("test.bf", ">>>>")
	prog, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	compressed := Compress(prog)
	if len(compressed) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(compressed))
	}
	if compressed[0].Op != OpMoveRight || compressed[0].Arg != 4 {
		t.Fatalf("expected {move-right 4}, got {%v %d}", compressed[0].Op, compressed[0].Arg)
	}
}

func TestCompressRunBoundaries(t *testing.T) {
	// output, input and jumps end runs and are never merged
	src := NewSource("test.bf", "++.++,++[--]")
	prog, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	compressed := Compress(prog)

	expected := []struct {
		op  OpCode
		arg int
	}{
		{OpIncCell, 2},
		{OpOutput, 1},
		{OpIncCell, 2},
		{OpInput, 1},
		{OpIncCell, 2},
		{OpJumpIfZero, 7},
		{OpDecCell, 2},
		{OpJumpIfNonZero, 5},
	}
	if len(compressed) != len(expected) {
		t.Fatalf("expected %d instructions, got %d", len(expected), len(compressed))
	}
	for i, e := range expected {
		if compressed[i].Op != e.op || compressed[i].Arg != e.arg {
			t.Fatalf("instruction %d: expected {%v %d}, got {%v %d}",
				i, e.op, e.arg, compressed[i].Op, compressed[i].Arg)
		}
	}
}

func TestCompressRemapsJumpTargets(t *testing.T) {
	src := NewSource("test.bf", "++++[>>>><<<<-]")
	prog, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	compressed := Compress(prog)

	// ++++ [ >>>> <<<< - ] compresses to {inc 4} [ {right 4} {left 4} {dec 1} ]
	if len(compressed) != 6 {
		t.Fatalf("expected 6 instructions, got %d", len(compressed))
	}
	if compressed[1].Op != OpJumpIfZero || compressed[1].Arg != 5 {
		t.Fatalf("open bracket: expected target 5, got %d", compressed[1].Arg)
	}
	if compressed[5].Op != OpJumpIfNonZero || compressed[5].Arg != 1 {
		t.Fatalf("close bracket: expected target 1, got %d", compressed[5].Arg)
	}
}

func TestCompressDoesNotMergeDifferentKinds(t *testing.T) {
	src := NewSource("test.bf", "+-+-")
	prog, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	compressed := Compress(prog)
	if len(compressed) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(compressed))
	}
}

func TestCompressEmpty(t *testing.T) {
	if compressed := Compress(nil); len(compressed) != 0 {
		t.Fatalf("expected empty program, got %d instructions", len(compressed))
	}
}
