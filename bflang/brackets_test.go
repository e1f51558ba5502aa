package bflang

import (
	"errors"
	"testing"
)

func TestMatchBrackets(t *testing.T) {
	src := NewSource("test.bf", "+[>[-]<]")
	tokens := src.Tokens()
	pairs, err := MatchBrackets(tokens)
	if err != nil {
		t.Fatal(err)
	}

	// token indices: 0 + 1 [ 2 > 3 [ 4 - 5 ] 6 < 7 ]
	for open, close := range map[int]int{1: 7, 3: 5} {
		if pairs[open] != close {
			t.Fatalf("expected %d to pair with %d, got %d", open, close, pairs[open])
		}
		if pairs[close] != open {
			t.Fatalf("expected %d to pair with %d, got %d", close, open, pairs[close])
		}
	}
}

func TestMatchBracketsUnmatchedOpen(t *testing.T) {
	src := NewSource("test.bf", "[++")
	_, err := MatchBrackets(src.Tokens())
	var open UnmatchedOpenBracket
	if !errors.As(err, &open) {
		t.Fatalf("expected UnmatchedOpenBracket, got %v", err)
	}
	if open.Pos.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", open.Pos.Offset)
	}
}

func TestMatchBracketsEarliestUnmatchedOpen(t *testing.T) {
	src := NewSource("test.bf", "[[]")
	_, err := MatchBrackets(src.Tokens())
	var open UnmatchedOpenBracket
	if !errors.As(err, &open) {
		t.Fatalf("expected UnmatchedOpenBracket, got %v", err)
	}
	if open.Pos.Offset != 0 {
		t.Fatalf("expected the earliest unmatched open, got offset %d", open.Pos.Offset)
	}
}

func TestMatchBracketsUnmatchedClose(t *testing.T) {
	src := NewSource("test.bf", "]")
	_, err := MatchBrackets(src.Tokens())
	var close UnmatchedCloseBracket
	if !errors.As(err, &close) {
		t.Fatalf("expected UnmatchedCloseBracket, got %v", err)
	}
	if close.Pos.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", close.Pos.Offset)
	}
}

func TestMatchBracketsEmpty(t *testing.T) {
	src := NewSource("test.bf", "+->.<,")
	pairs, err := MatchBrackets(src.Tokens())
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}
