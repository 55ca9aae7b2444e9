package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/pantry/pkg/pantry/internalerr"
	"github.com/cognicore/pantry/pkg/pantry/units"
	"github.com/cognicore/pantry/pkg/pantry/vocab"
)

// VocabularyFile is the on-disk form of a vocabulary extension.
//
// Expected format:
//
//	units:
//	  - canonical: deciliter
//	    class: volume
//	    surfaces: [dl, deziliter]
//	sizes: [mittelgroß]
//	preparations: [blanchiert]
//	connectors: [oder]
//	range_connectors: [or]
//	approximations: [rund]
//	fractions:
//	  "⅑": 0.111
type VocabularyFile struct {
	Units           []UnitEntry        `yaml:"units"`
	Sizes           []string           `yaml:"sizes"`
	Preparations    []string           `yaml:"preparations"`
	Connectors      []string           `yaml:"connectors"`
	RangeConnectors []string           `yaml:"range_connectors"`
	Approximations  []string           `yaml:"approximations"`
	Fractions       map[string]float64 `yaml:"fractions"`
}

// UnitEntry is one canonical unit and its spellings.
type UnitEntry struct {
	Canonical string   `yaml:"canonical"`
	Class     string   `yaml:"class"`
	Surfaces  []string `yaml:"surfaces"`
}

// LoadVocabulary loads a vocabulary extension from a YAML file.
func LoadVocabulary(path string) (*VocabularyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var vf VocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, err
	}
	if err := vf.Validate(); err != nil {
		return nil, err
	}

	return &vf, nil
}

// Validate checks unit entries for a canonical name and a known class.
func (vf *VocabularyFile) Validate() error {
	for i, u := range vf.Units {
		if u.Canonical == "" {
			return errors.Wrapf(internalerr.ErrInvalidConfig, "unit %d: canonical is required", i)
		}
		if _, ok := units.ParseClass(u.Class); !ok {
			return errors.Wrapf(internalerr.ErrInvalidConfig, "unit %q: unknown class %q", u.Canonical, u.Class)
		}
	}
	return nil
}

// UnitEntries converts the unit section into table entries.
func (vf *VocabularyFile) UnitEntries() []units.Entry {
	entries := make([]units.Entry, 0, len(vf.Units))
	for _, u := range vf.Units {
		class, _ := units.ParseClass(u.Class)
		entries = append(entries, units.Entry{
			Canonical: u.Canonical,
			Class:     class,
			Surfaces:  u.Surfaces,
		})
	}
	return entries
}

// Additions converts the word-list sections into vocabulary additions.
func (vf *VocabularyFile) Additions() vocab.Additions {
	return vocab.Additions{
		Sizes:           vf.Sizes,
		Preparations:    vf.Preparations,
		Connectors:      vf.Connectors,
		RangeConnectors: vf.RangeConnectors,
		Approximations:  vf.Approximations,
		Fractions:       vf.Fractions,
	}
}
