package units

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Class is the coarse category a canonical unit belongs to.
type Class string

const (
	Volume    Class = "volume"
	Weight    Class = "weight"
	Count     Class = "count"
	Container Class = "container"
)

// ParseClass maps a class name to a Class.
func ParseClass(s string) (Class, bool) {
	switch c := Class(strings.ToLower(strings.TrimSpace(s))); c {
	case Volume, Weight, Count, Container:
		return c, true
	}
	return "", false
}

// Descriptor is what a surface spelling resolves to.
type Descriptor struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Class     Class  `json:"class" yaml:"class"`
}

// Entry groups the surface spellings of one canonical unit.
// Surfaces may contain spaces ("fl oz").
type Entry struct {
	Canonical string
	Class     Class
	Surfaces  []string
}

// Table maps surface spellings to descriptors.
// A Table is never modified after construction, so it is safe for concurrent use.
type Table struct {
	// surface (lowercase) -> descriptor
	index map[string]Descriptor
	// longest surface form, in words
	maxPhrase int
}

// NewTable builds a table from the given entries. Later entries win when two
// entries claim the same surface form.
func NewTable(entries []Entry) *Table {
	t := &Table{
		index:     make(map[string]Descriptor),
		maxPhrase: 1,
	}
	t.add(entries)
	return t
}

// Extend returns a new table holding the receiver's forms plus entries.
// The receiver is left untouched.
func (t *Table) Extend(entries []Entry) *Table {
	next := &Table{
		index:     make(map[string]Descriptor, len(t.index)+len(entries)),
		maxPhrase: t.maxPhrase,
	}
	for k, v := range t.index {
		next.index[k] = v
	}
	next.add(entries)
	return next
}

func (t *Table) add(entries []Entry) {
	for _, e := range entries {
		d := Descriptor{Canonical: normalize(e.Canonical), Class: e.Class}
		// The canonical name is itself a spelling, but never overrides one
		// registered earlier ("becher" maps to cup without making "cup" a container).
		if _, ok := t.index[d.Canonical]; !ok {
			t.put(d.Canonical, d)
		}
		for _, s := range e.Surfaces {
			t.put(normalize(s), d)
		}
	}
}

func (t *Table) put(key string, d Descriptor) {
	if key == "" {
		return
	}
	t.index[key] = d
	if n := len(strings.Fields(key)); n > t.maxPhrase {
		t.maxPhrase = n
	}
}

// Canonicalize resolves a surface spelling, case-insensitively. A trailing
// abbreviation dot ("St.", "Pck.") is tolerated when the dotted form is unknown.
//
// Examples:
//   - Canonicalize("TL")   -> {teaspoon volume}
//   - Canonicalize("St.")  -> {piece count}
//   - Canonicalize("eggs") -> false
func (t *Table) Canonicalize(surface string) (Descriptor, bool) {
	key := normalize(surface)
	if d, ok := t.index[key]; ok {
		return d, true
	}
	if trimmed := strings.TrimSuffix(key, "."); trimmed != key && trimmed != "" {
		d, ok := t.index[trimmed]
		return d, ok
	}
	return Descriptor{}, false
}

// IsValidUnit reports whether surface is a known unit spelling.
func (t *Table) IsValidUnit(surface string) bool {
	_, ok := t.Canonicalize(surface)
	return ok
}

// MaxPhrase returns the word count of the longest surface form.
func (t *Table) MaxPhrase() int {
	return t.maxPhrase
}

// Supported returns every known surface form, sorted.
func (t *Table) Supported() []string {
	out := make([]string, 0, len(t.index))
	for s := range t.index {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of surface forms.
func (t *Table) Len() int {
	return len(t.index)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(s))), " ")
}
