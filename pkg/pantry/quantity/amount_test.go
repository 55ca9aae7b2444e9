package quantity

import (
	"testing"

	"github.com/cognicore/pantry/pkg/pantry/token"
	"github.com/cognicore/pantry/pkg/pantry/units"
	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

func extract(t *testing.T, line string) (Amount, token.Span, []string, bool) {
	t.Helper()
	v := vocab.Default()
	tokens := token.NewTokenizer(v).Tokenize(line)
	a, span, ok := ExtractAmount(tokens, NewMatcher(v), units.Default())
	return a, span, token.Texts(tokens), ok
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		line  string
		qty   float64
		unit  string
		class units.Class
		text  string
		span  token.Span
	}{
		{"2 cups flour", 2, "cup", units.Volume, "2 cups", token.Span{Start: 0, End: 2}},
		{"1/2 tsp salt", 0.5, "teaspoon", units.Volume, "1/2 tsp", token.Span{Start: 0, End: 2}},
		{"Zucker 300 g", 300, "gram", units.Weight, "300 g", token.Span{Start: 1, End: 3}},
		{"Zitronen 5 St.", 5, "piece", units.Count, "5 St.", token.Span{Start: 1, End: 3}},
		{"1 1/2 cups milk", 1.5, "cup", units.Volume, "1 1/2 cups", token.Span{Start: 0, End: 3}},
		{"8 fl oz cream", 8, "fluid_ounce", units.Volume, "8 fl oz", token.Span{Start: 0, End: 3}},
		{"about 2 tbsp olive oil", 2, "tablespoon", units.Volume, "about 2 tbsp", token.Span{Start: 0, End: 3}},
		{"2 Becher Sahne", 2, "cup", units.Container, "2 Becher", token.Span{Start: 0, End: 2}},
		{"2 to 3 cloves garlic", 2, "clove", units.Count, "2 to 3 cloves", token.Span{Start: 0, End: 4}},
		{"1 1/2 - 2 cups flour", 1.5, "cup", units.Volume, "1 1/2 - 2 cups", token.Span{Start: 0, End: 5}},
		{"1/2-1 cup sugar", 0.5, "cup", units.Volume, "1/2-1 cup", token.Span{Start: 0, End: 2}},
	}

	for _, tt := range tests {
		a, span, _, ok := extract(t, tt.line)
		if !ok {
			t.Errorf("%q: expected an amount", tt.line)
			continue
		}
		if !approxEqual(a.Quantity, tt.qty) || a.Unit != tt.unit || a.UnitClass != tt.class {
			t.Errorf("%q: got %+v, want %v %s (%s)", tt.line, a, tt.qty, tt.unit, tt.class)
		}
		if a.Text != tt.text {
			t.Errorf("%q: text %q, want %q", tt.line, a.Text, tt.text)
		}
		if span != tt.span {
			t.Errorf("%q: span %+v, want %+v", tt.line, span, tt.span)
		}
	}
}

func TestExtractAmountPrefersQuantityWithUnit(t *testing.T) {
	// the leading "1" has no unit; "14 oz" does
	a, span, _, ok := extract(t, "1 14 oz can tomatoes")
	if !ok {
		t.Fatal("expected an amount")
	}
	if a.Unit != "ounce" || a.Quantity != 14 {
		t.Errorf("got %+v", a)
	}
	if span != (token.Span{Start: 1, End: 3}) {
		t.Errorf("span %+v", span)
	}
}

func TestExtractAmountBareQuantity(t *testing.T) {
	a, span, _, ok := extract(t, "3-4 large eggs")
	if !ok {
		t.Fatal("expected an amount")
	}
	if a.Unit != "" || a.UnitClass != "" {
		t.Errorf("expected no unit, got %+v", a)
	}
	if !a.IsRange || a.Quantity != 3 || a.QuantityMax == nil || *a.QuantityMax != 4 {
		t.Errorf("expected range 3-4, got %+v", a)
	}
	if span != (token.Span{Start: 0, End: 1}) {
		t.Errorf("span %+v", span)
	}
}

func TestExtractAmountNone(t *testing.T) {
	for _, line := range []string{"salt", "", "freshly ground pepper", "flour (the good kind"} {
		if a, _, _, ok := extract(t, line); ok {
			t.Errorf("%q: unexpected amount %+v", line, a)
		}
	}
}
