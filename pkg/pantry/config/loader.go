package config

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cognicore/pantry/pkg/pantry/parser"
	"github.com/cognicore/pantry/pkg/pantry/units"
	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

// Loader loads configuration files and constructs components.
type Loader struct {
	VocabularyPath string
	Logger         *zerolog.Logger
}

// Components holds the tables and the parser built over them.
type Components struct {
	Units      *units.Table
	Vocabulary *vocab.Vocabulary
	Parser     *parser.Parser
}

// Load reads the vocabulary extension, if any, and returns initialized
// components. Without a path the built-in tables are used as-is.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Units:      units.Default(),
		Vocabulary: vocab.Default(),
	}

	if l.VocabularyPath != "" {
		vf, err := LoadVocabulary(l.VocabularyPath)
		if err != nil {
			return nil, errors.Wrap(err, "load vocabulary")
		}
		comp.Units = comp.Units.Extend(vf.UnitEntries())
		comp.Vocabulary = comp.Vocabulary.Extend(vf.Additions())

		if l.Logger != nil {
			l.Logger.Info().
				Str("path", l.VocabularyPath).
				Int("units", len(vf.Units)).
				Int("sizes", len(vf.Sizes)).
				Int("preparations", len(vf.Preparations)).
				Int("fractions", len(vf.Fractions)).
				Msg("vocabulary extension loaded")
		}
	}

	comp.Parser = parser.New(parser.Options{
		Units:      comp.Units,
		Vocabulary: comp.Vocabulary,
	})

	return comp, nil
}
