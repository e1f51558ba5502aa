package bflang

// Tokenizer scans a Source and yields the recognized instruction
// symbols one at a time. Everything that is not one of the eight
// significant characters is a comment and is skipped silently.
//
// Scanning is pure. A new Tokenizer over the same Source yields an
// equivalent sequence.
type Tokenizer struct {
	source *Source
	offset int
	line   int
	column int
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Next returns the next recognized symbol, or nil when the source is
// exhausted.
func (t *Tokenizer) Next() *Token {
	content := t.source.Content
	for t.offset < len(content) {
		c := content[t.offset]
		pos := Pos{
			Source: t.source,
			Line:   t.line,
			Column: t.column,
			Offset: t.offset,
		}
		t.offset++
		if c == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
		if op, ok := opForSymbol(c); ok {
			return &Token{
				Op:  op,
				Pos: pos,
			}
		}
	}
	return nil
}
