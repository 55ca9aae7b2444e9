// Package extract removes the secondary fields of an ingredient line: size
// modifier, preparation phrase and parenthetical comment. Each extractor is a
// pure function over the remaining tokens and reports the span it consumed.
package extract

import (
	"strings"

	"github.com/cognicore/pantry/pkg/pantry/token"
	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

// Size returns the leftmost size modifier ("large", "extra large", "kleine").
func Size(tokens []token.Token, v *vocab.Vocabulary) (string, token.Span, bool) {
	words := token.Texts(tokens)
	for i := range words {
		if n := v.Sizes.MatchAt(words, i); n > 0 {
			return strings.Join(words[i:i+n], " "), token.Span{Start: i, End: i + n}, true
		}
	}
	return "", token.Span{}, false
}

// Preparation returns the leftmost preparation phrase. The span grows forward
// while the following words are preparation terms or connectors
// ("cut into", "chopped and", "fein gehackt").
func Preparation(tokens []token.Token, v *vocab.Vocabulary) (string, token.Span, bool) {
	words := token.Texts(tokens)
	for i := range words {
		n := v.Preparations.MatchAt(words, i)
		if n == 0 {
			continue
		}
		end := i + n
		for end < len(words) {
			if k := v.Preparations.MatchAt(words, end); k > 0 {
				end += k
				continue
			}
			if k := v.Connectors.MatchAt(words, end); k > 0 {
				end += k
				continue
			}
			break
		}
		return strings.Join(words[i:end], " "), token.Span{Start: i, End: end}, true
	}
	return "", token.Span{}, false
}

// Comment returns the first non-empty parenthesized span with its outer
// parentheses stripped. An unterminated "(" runs to the last token.
func Comment(tokens []token.Token) (string, token.Span, bool) {
	for i, tok := range tokens {
		if !strings.HasPrefix(tok.Text, "(") {
			continue
		}
		end := i
		for end < len(tokens)-1 && !strings.HasSuffix(tokens[end].Text, ")") {
			end++
		}
		span := token.Span{Start: i, End: end + 1}

		text := token.Join(tokens[span.Start:span.End])
		text = strings.TrimPrefix(text, "(")
		text = strings.TrimSuffix(text, ")")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		return text, span, true
	}
	return "", token.Span{}, false
}
