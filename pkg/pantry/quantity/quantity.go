// Package quantity recognizes numeric expressions in tokenized ingredient
// lines: fractions, ranges, mixed numbers, decimals and approximations.
package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

// Value is a recognized numeric expression.
type Value struct {
	Quantity      float64
	QuantityMax   *float64
	IsRange       bool
	IsApproximate bool
	Text          string // source tokens joined by single spaces
}

var (
	decimalRe  = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
	wholeRe    = regexp.MustCompile(`^\d+$`)
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	// number, connector, number within one token ("3-4", "2–3", "1/2-1")
	rangeRe = regexp.MustCompile(`^(\d+/\d+|\d+(?:[.,]\d+)?)\s*([^\d\s/]+)\s*(\d+/\d+|\d+(?:[.,]\d+)?)$`)
)

// Matcher recognizes quantities using the fraction, approximation and range
// vocabularies.
type Matcher struct {
	vocab *vocab.Vocabulary
}

// NewMatcher creates a matcher over the given vocabulary.
func NewMatcher(v *vocab.Vocabulary) *Matcher {
	return &Matcher{vocab: v}
}

// Match tries to read a quantity starting at words[i]. It returns the value and
// the number of words consumed.
func (m *Matcher) Match(words []string, i int) (Value, int, bool) {
	if i < 0 || i >= len(words) {
		return Value{}, 0, false
	}

	view := words[i:]
	skip := 0
	approx := false

	// 1. approximation marker, standalone or glued to the number
	if m.vocab.IsApproximation(view[0]) && len(view) > 1 {
		approx = true
		skip = 1
		view = view[1:]
	} else if rest, ok := m.vocab.StripApproximation(view[0]); ok {
		approx = true
		view = append([]string{rest}, view[1:]...)
	}

	v, n, ok := m.matchNumeric(view)
	if !ok {
		return Value{}, 0, false
	}
	v.IsApproximate = approx
	v.Text = strings.Join(words[i:i+skip+n], " ")
	return v, skip + n, true
}

func (m *Matcher) matchNumeric(view []string) (Value, int, bool) {
	w := strings.ToLower(view[0])

	// 2. range within one token, or spread over several ("1 1/2 - 2")
	if g := rangeRe.FindStringSubmatch(w); g != nil && m.vocab.RangeConnectors.Contains(g[2]) {
		lo, okLo := m.number(g[1])
		hi, okHi := m.number(g[3])
		if okLo && okHi {
			return rangeValue(lo, hi), 1, true
		}
	}
	if lo, nLo, ok := m.bound(view); ok && len(view) > nLo+1 && m.vocab.RangeConnectors.Contains(view[nLo]) {
		if hi, nHi, ok := m.bound(view[nLo+1:]); ok {
			return rangeValue(lo, hi), nLo + 1 + nHi, true
		}
	}

	// 3. fraction table
	if f, ok := m.vocab.Fraction(w); ok {
		return Value{Quantity: f}, 1, true
	}

	// 4. mixed number: whole token followed by a standalone fraction token
	if q, ok := m.mixed(view); ok {
		return Value{Quantity: q}, 2, true
	}

	// 5. simple fraction
	if f, ok := simpleFraction(w); ok {
		return Value{Quantity: f}, 1, true
	}

	// 6. plain decimal, "." or "," as decimal point
	if d, ok := parseDecimal(w); ok {
		return Value{Quantity: d}, 1, true
	}

	return Value{}, 0, false
}

// bound reads one side of a multi-token range: a mixed number or a single
// number.
func (m *Matcher) bound(view []string) (float64, int, bool) {
	if q, ok := m.mixed(view); ok {
		return q, 2, true
	}
	if len(view) > 0 {
		if q, ok := m.number(view[0]); ok {
			return q, 1, true
		}
	}
	return 0, 0, false
}

func (m *Matcher) mixed(view []string) (float64, bool) {
	if len(view) < 2 || !wholeRe.MatchString(view[0]) {
		return 0, false
	}
	frac, ok := m.fraction(view[1])
	if !ok {
		return 0, false
	}
	whole, ok := parseDecimal(view[0])
	if !ok {
		return 0, false
	}
	return whole + frac, true
}

// number parses a single-token number: fraction or decimal.
func (m *Matcher) number(s string) (float64, bool) {
	if f, ok := m.fraction(s); ok {
		return f, true
	}
	return parseDecimal(s)
}

func (m *Matcher) fraction(s string) (float64, bool) {
	if f, ok := m.vocab.Fraction(s); ok {
		return f, true
	}
	return simpleFraction(s)
}

func simpleFraction(s string) (float64, bool) {
	g := fractionRe.FindStringSubmatch(s)
	if g == nil {
		return 0, false
	}
	num, ok := finite(g[1])
	if !ok {
		return 0, false
	}
	den, ok := finite(g[2])
	if !ok || den == 0 {
		return 0, false
	}
	return num / den, true
}

// parseDecimal reads a decimal with "." or "," as the point. Values that do
// not fit a float64 are not numbers.
func parseDecimal(s string) (float64, bool) {
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	return finite(strings.Replace(s, ",", ".", 1))
}

func finite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func rangeValue(a, b float64) Value {
	hi := math.Max(a, b)
	return Value{Quantity: math.Min(a, b), QuantityMax: &hi, IsRange: true}
}
