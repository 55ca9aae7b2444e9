package quantity

import (
	"strings"

	"github.com/cognicore/pantry/pkg/pantry/token"
	"github.com/cognicore/pantry/pkg/pantry/units"
)

// Amount is a quantity with an optional canonical unit.
type Amount struct {
	Quantity      float64  `json:"quantity"`
	QuantityMax   *float64 `json:"quantityMax,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	Text          string   `json:"text"`
	IsRange       bool     `json:"isRange"`
	IsApproximate bool     `json:"isApproximate"`

	// UnitClass is empty when Unit is.
	UnitClass units.Class `json:"unitClass,omitempty"`
}

// ExtractAmount finds the amount in tokens. The leftmost quantity directly
// followed by a unit wins anywhere in the line ("Zucker 300 g"); failing that,
// the leftmost bare quantity is taken without a unit.
func ExtractAmount(tokens []token.Token, m *Matcher, table *units.Table) (Amount, token.Span, bool) {
	words := token.Texts(tokens)

	for i := range words {
		v, n, ok := m.Match(words, i)
		if !ok {
			continue
		}
		d, un, ok := matchUnit(words, i+n, table)
		if !ok {
			continue
		}
		a := newAmount(v)
		a.Unit = d.Canonical
		a.UnitClass = d.Class
		a.Text = strings.Join(words[i:i+n+un], " ")
		return a, token.Span{Start: i, End: i + n + un}, true
	}

	for i := range words {
		if v, n, ok := m.Match(words, i); ok {
			return newAmount(v), token.Span{Start: i, End: i + n}, true
		}
	}

	return Amount{}, token.Span{}, false
}

// matchUnit resolves the longest unit phrase starting at words[j].
func matchUnit(words []string, j int, table *units.Table) (units.Descriptor, int, bool) {
	if j >= len(words) {
		return units.Descriptor{}, 0, false
	}
	maxPhrase := table.MaxPhrase()
	if remaining := len(words) - j; maxPhrase > remaining {
		maxPhrase = remaining
	}
	for n := maxPhrase; n >= 1; n-- {
		if d, ok := table.Canonicalize(strings.Join(words[j:j+n], " ")); ok {
			return d, n, true
		}
	}
	return units.Descriptor{}, 0, false
}

func newAmount(v Value) Amount {
	return Amount{
		Quantity:      v.Quantity,
		QuantityMax:   v.QuantityMax,
		Text:          v.Text,
		IsRange:       v.IsRange,
		IsApproximate: v.IsApproximate,
	}
}
