// Package parser turns raw ingredient lines into structured records.
//
// A line flows through a fixed pipeline:
//
//	tokenize → amount → size → preparation → comment → name
//
// Every stage sees only the tokens the previous stages left behind. Parsing is
// total: unrecognized input yields a record whose Name is the original line.
package parser

import (
	"github.com/cognicore/pantry/pkg/pantry/extract"
	"github.com/cognicore/pantry/pkg/pantry/quantity"
	"github.com/cognicore/pantry/pkg/pantry/token"
	"github.com/cognicore/pantry/pkg/pantry/units"
	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

// Amount is a quantity with an optional canonical unit.
type Amount = quantity.Amount

// Ingredient is the parsed form of one ingredient line. Empty strings and a nil
// Amount mean the field was not found.
type Ingredient struct {
	Name        string  `json:"name"`
	Size        string  `json:"size,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	Preparation string  `json:"preparation,omitempty"`
	Comment     string  `json:"comment,omitempty"`
	Original    string  `json:"original"`
}

// Parser holds the read-only tables a parse consults. A Parser is safe for
// concurrent use.
type Parser struct {
	units     *units.Table
	vocab     *vocab.Vocabulary
	tokenizer *token.Tokenizer
	matcher   *quantity.Matcher
}

// Options configures a Parser. Nil fields fall back to the built-in tables.
type Options struct {
	Units      *units.Table
	Vocabulary *vocab.Vocabulary
}

// New creates a parser over the given tables.
func New(opts Options) *Parser {
	if opts.Units == nil {
		opts.Units = units.Default()
	}
	if opts.Vocabulary == nil {
		opts.Vocabulary = vocab.Default()
	}
	return &Parser{
		units:     opts.Units,
		vocab:     opts.Vocabulary,
		tokenizer: token.NewTokenizer(opts.Vocabulary),
		matcher:   quantity.NewMatcher(opts.Vocabulary),
	}
}

// Units returns the unit table the parser uses.
func (p *Parser) Units() *units.Table {
	return p.units
}

// Parse extracts amount, size, preparation, comment and name from line.
func (p *Parser) Parse(line string) Ingredient {
	result := Ingredient{Name: line, Original: line}
	tokens := p.tokenizer.Tokenize(line)

	// 1. amount (quantity + unit)
	if amount, span, ok := quantity.ExtractAmount(tokens, p.matcher, p.units); ok {
		result.Amount = &amount
		tokens = token.Remove(tokens, span)
	}

	// 2. size modifier
	if size, span, ok := extract.Size(tokens, p.vocab); ok {
		result.Size = size
		tokens = token.Remove(tokens, span)
	}

	// 3. preparation
	if prep, span, ok := extract.Preparation(tokens, p.vocab); ok {
		result.Preparation = prep
		tokens = token.Remove(tokens, span)
	}

	// 4. comment in parentheses
	if comment, span, ok := extract.Comment(tokens); ok {
		result.Comment = comment
		tokens = token.Remove(tokens, span)
	}

	// What remains is the ingredient name
	if name := token.Join(tokens); name != "" {
		result.Name = name
	}

	return result
}

// ParseIngredients parses every line, keeping order. A nil slice yields nil;
// an empty slice yields an empty, non-nil slice.
func (p *Parser) ParseIngredients(lines []string) []Ingredient {
	if lines == nil {
		return nil
	}
	out := make([]Ingredient, len(lines))
	for i, line := range lines {
		out[i] = p.Parse(line)
	}
	return out
}

var defaultParser = New(Options{})

// Default returns the parser over the built-in tables.
func Default() *Parser {
	return defaultParser
}

// Parse parses line with the default parser.
func Parse(line string) Ingredient {
	return defaultParser.Parse(line)
}

// ParseIngredients parses lines with the default parser.
func ParseIngredients(lines []string) []Ingredient {
	return defaultParser.ParseIngredients(lines)
}

// IsValidUnit reports whether unit is known to the built-in unit table.
func IsValidUnit(unit string) bool {
	return defaultParser.units.IsValidUnit(unit)
}

// SupportedUnits lists the surface forms of the built-in unit table.
func SupportedUnits() []string {
	return defaultParser.units.Supported()
}
