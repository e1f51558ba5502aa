package bflang

import (
	"fmt"
	"os"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func LoadSource(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, SourceLoadError{
			Path: path,
			Err:  err,
		}
	}
	return NewSource(path, string(content)), nil
}

// Tokens re-scans the source. The result only contains the eight
// significant symbols, in source order.
func (s *Source) Tokens() []Token {
	tokenizer := NewTokenizer(s)
	var tokens []Token
	for {
		token := tokenizer.Next()
		if token == nil {
			break
		}
		tokens = append(tokens, *token)
	}
	return tokens
}

type Pos struct {
	Source *Source
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	if p.Source == nil {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source.Name, p.Line, p.Column)
}
