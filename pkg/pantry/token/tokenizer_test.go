package token

import (
	"reflect"
	"testing"

	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

func TestTokenize(t *testing.T) {
	tok := NewTokenizer(vocab.Default())

	tests := []struct {
		input string
		want  []string
	}{
		{"2 cups flour", []string{"2", "cups", "flour"}},
		{"3-4 large eggs, beaten", []string{"3-4", "large", "eggs", "beaten"}},
		{"flour (the good kind)", []string{"flour", "(the", "good", "kind)"}},
		{"flour(sifted)", []string{"flour", "(sifted)"}},
		{"1½ cups milk", []string{"1", "½", "cups", "milk"}},
		{"1 ½ cups", []string{"1", "½", "cups"}},
		{"1,5 kg Mehl", []string{"1,5", "kg", "Mehl"}},
		{"salt,pepper", []string{"salt", "pepper"}},
		{"Minze,  frisch 40 g", []string{"Minze", "frisch", "40", "g"}},
		{"  2\t cups  ", []string{"2", "cups"}},
		{"1/2 tsp", []string{"1/2", "tsp"}},
	}

	for _, tt := range tests {
		got := Texts(tok.Tokenize(tt.input))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer(vocab.Default())

	for _, s := range []string{"", "   ", ",,", "\t\n"} {
		if got := tok.Tokenize(s); len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no tokens", s, got)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tok := NewTokenizer(vocab.Default())

	tokens := tok.Tokenize("3-4 large eggs, beaten")
	want := []int{0, 4, 10, 16}
	for i, tk := range tokens {
		if tk.Offset != want[i] {
			t.Errorf("token %q: offset %d, want %d", tk.Text, tk.Offset, want[i])
		}
	}

	// "½" is two bytes in UTF-8
	tokens = tok.Tokenize("1½ cups")
	want = []int{0, 1, 4}
	for i, tk := range tokens {
		if tk.Offset != want[i] {
			t.Errorf("token %q: offset %d, want %d", tk.Text, tk.Offset, want[i])
		}
	}
}

func TestTokenizeNormalizesNFC(t *testing.T) {
	tok := NewTokenizer(nil)

	// "u" followed by a combining diaeresis
	got := tok.Tokenize("2 Stu\u0308ck")
	if len(got) != 2 || got[1].Text != "Stück" {
		t.Errorf("expected composed Stück, got %q", Texts(got))
	}
}

func TestTokenizeWithoutGlyphs(t *testing.T) {
	tok := NewTokenizer(nil)

	got := Texts(tok.Tokenize("1½ cups"))
	want := []string{"1½", "cups"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRemove(t *testing.T) {
	tokens := []Token{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}

	got := Texts(Remove(tokens, Span{Start: 1, End: 3}))
	if want := []string{"a", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Remove = %q, want %q", got, want)
	}

	// input untouched
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(Texts(tokens), want) {
		t.Errorf("Remove modified its input: %q", Texts(tokens))
	}

	// out-of-range and empty spans copy the input
	for _, span := range []Span{{Start: 2, End: 2}, {Start: -1, End: 1}, {Start: 3, End: 9}} {
		if got := Remove(tokens, span); len(got) != len(tokens) {
			t.Errorf("Remove(%+v) dropped tokens: %q", span, Texts(got))
		}
	}
}

func TestJoin(t *testing.T) {
	tokens := []Token{{Text: "olive"}, {Text: "oil"}}
	if got := Join(tokens); got != "olive oil" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q", got)
	}
}
