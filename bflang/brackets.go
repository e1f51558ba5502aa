package bflang

// Pairs maps the token index of each bracket to the token index of
// its partner, in both directions.
type Pairs map[int]int

// MatchBrackets checks that every [ has exactly one matching ] and
// that the pairs nest properly. It must succeed before anything
// executes; a structurally invalid program produces zero output.
//
// An unmatched ] is reported at its own position. If open brackets
// remain after the scan, the earliest one is reported.
func MatchBrackets(tokens []Token) (Pairs, error) {
	pairs := make(Pairs)
	var opens []int
	for i, token := range tokens {
		switch token.Op {
		case OpJumpIfZero:
			opens = append(opens, i)
		case OpJumpIfNonZero:
			if len(opens) == 0 {
				return nil, UnmatchedCloseBracket{
					Pos: token.Pos,
				}
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			pairs[open] = i
			pairs[i] = open
		}
	}
	if len(opens) > 0 {
		return nil, UnmatchedOpenBracket{
			Pos: tokens[opens[0]].Pos,
		}
	}
	return pairs, nil
}
