package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Token is one lexical unit of an ingredient line.
type Token struct {
	Text   string // NFC-normalized text
	Offset int    // byte offset in the raw input
}

// GlyphSet tells the tokenizer which runes are fraction glyphs ("½") that
// must stand alone.
type GlyphSet interface {
	IsFractionGlyph(r rune) bool
}

// Tokenizer splits ingredient lines into tokens.
type Tokenizer struct {
	glyphs GlyphSet
}

// NewTokenizer creates a tokenizer. glyphs may be nil.
func NewTokenizer(glyphs GlyphSet) *Tokenizer {
	return &Tokenizer{glyphs: glyphs}
}

// Tokenize splits text on whitespace and commas, collapsing runs.
// Parentheses stay attached to the neighbouring word: "(" opens a new token and
// ")" closes the current one. A comma between two digits ("1,5") is a decimal
// separator, not a split point. Fraction glyphs always become their own token.
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	var current strings.Builder
	start := -1

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, Token{Text: norm.NFC.String(current.String()), Offset: start})
			current.Reset()
		}
		start = -1
	}
	push := func(offset int, r rune) {
		if start < 0 {
			start = offset
		}
		current.WriteRune(r)
	}

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == ',':
			if isDecimalComma(text, i) {
				push(i, r)
				continue
			}
			flush()
		case r == '(':
			flush()
			push(i, r)
		case r == ')':
			push(i, r)
			flush()
		case t.glyphs != nil && t.glyphs.IsFractionGlyph(r):
			flush()
			push(i, r)
			flush()
		default:
			push(i, r)
		}
	}
	flush()

	return tokens
}

// isDecimalComma reports whether the comma at byte i sits between two digits.
func isDecimalComma(text string, i int) bool {
	before, _ := utf8.DecodeLastRuneInString(text[:i])
	after, _ := utf8.DecodeRuneInString(text[i+1:])
	return unicode.IsDigit(before) && unicode.IsDigit(after)
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// Join joins token texts with single spaces.
func Join(tokens []Token) string {
	return strings.Join(Texts(tokens), " ")
}
