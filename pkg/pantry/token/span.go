package token

// Span is a half-open range [Start, End) of token indexes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Remove returns a new slice without the tokens covered by span.
// The input slice is never modified.
func Remove(tokens []Token, span Span) []Token {
	if span.Start < 0 || span.End > len(tokens) || span.Len() <= 0 {
		return append([]Token(nil), tokens...)
	}
	out := make([]Token, 0, len(tokens)-span.Len())
	out = append(out, tokens[:span.Start]...)
	out = append(out, tokens[span.End:]...)
	return out
}
