// Package vocab holds the closed word lists the ingredient parser consults:
// size modifiers, preparation terms and their connectors, approximation
// markers, range connectors and the fraction table.
//
// A Vocabulary is plain data. Growing a list (a new language, a new
// abbreviation) never touches parsing logic.
package vocab

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Vocabulary bundles every word list used by the parser. It is never modified
// after construction.
type Vocabulary struct {
	Sizes           PhraseSet
	Preparations    PhraseSet
	Connectors      PhraseSet
	RangeConnectors PhraseSet

	// approximation markers, longest first so prefix stripping is greedy
	approximations []string
	// glyph or ASCII form -> value
	fractions map[string]float64
	// single-rune fraction forms
	glyphs map[rune]struct{}
}

// Additions lists entries to merge into a Vocabulary.
type Additions struct {
	Sizes           []string
	Preparations    []string
	Connectors      []string
	RangeConnectors []string
	Approximations  []string
	Fractions       map[string]float64
}

// New builds a vocabulary from scratch.
func New(a Additions) *Vocabulary {
	v := &Vocabulary{
		Sizes:           NewPhraseSet(a.Sizes),
		Preparations:    NewPhraseSet(a.Preparations),
		Connectors:      NewPhraseSet(a.Connectors),
		RangeConnectors: NewPhraseSet(a.RangeConnectors),
		fractions:       make(map[string]float64, len(a.Fractions)),
		glyphs:          make(map[rune]struct{}),
	}
	v.addApproximations(a.Approximations)
	v.addFractions(a.Fractions)
	return v
}

// Extend returns a new vocabulary holding the receiver's entries plus a.
func (v *Vocabulary) Extend(a Additions) *Vocabulary {
	next := &Vocabulary{
		Sizes:           v.Sizes.With(a.Sizes),
		Preparations:    v.Preparations.With(a.Preparations),
		Connectors:      v.Connectors.With(a.Connectors),
		RangeConnectors: v.RangeConnectors.With(a.RangeConnectors),
		fractions:       make(map[string]float64, len(v.fractions)+len(a.Fractions)),
		glyphs:          make(map[rune]struct{}, len(v.glyphs)),
	}
	next.addApproximations(append(append([]string(nil), v.approximations...), a.Approximations...))
	next.addFractions(v.fractions)
	next.addFractions(a.Fractions)
	return next
}

func (v *Vocabulary) addApproximations(markers []string) {
	seen := make(map[string]bool, len(markers))
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	v.approximations = out
}

func (v *Vocabulary) addFractions(fractions map[string]float64) {
	for form, value := range fractions {
		form = strings.TrimSpace(form)
		if form == "" {
			continue
		}
		v.fractions[form] = value
		if r, size := utf8.DecodeRuneInString(form); size == len(form) && r > utf8.RuneSelf {
			v.glyphs[r] = struct{}{}
		}
	}
}

// Fraction looks up a glyph or ASCII fraction ("½", "1/2").
func (v *Vocabulary) Fraction(s string) (float64, bool) {
	f, ok := v.fractions[s]
	return f, ok
}

// IsFractionGlyph reports whether r is a single-rune fraction form.
func (v *Vocabulary) IsFractionGlyph(r rune) bool {
	_, ok := v.glyphs[r]
	return ok
}

// IsApproximation reports whether a whole token is an approximation marker.
func (v *Vocabulary) IsApproximation(s string) bool {
	s = strings.ToLower(s)
	for _, m := range v.approximations {
		if s == m {
			return true
		}
	}
	return false
}

// StripApproximation removes a leading approximation marker glued to the
// rest of a token ("~2", "ca.200") and reports whether one was found.
func (v *Vocabulary) StripApproximation(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, m := range v.approximations {
		if len(lower) > len(m) && strings.HasPrefix(lower, m) {
			return strings.TrimSpace(s[len(m):]), true
		}
	}
	return s, false
}

// Approximations returns the approximation markers, longest first.
func (v *Vocabulary) Approximations() []string {
	return append([]string(nil), v.approximations...)
}
