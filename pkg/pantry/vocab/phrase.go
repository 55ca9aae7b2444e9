package vocab

import "strings"

// PhraseSet is a closed set of words and multi-word phrases, matched
// case-insensitively against token texts.
type PhraseSet struct {
	phrases map[string]struct{}
	maxLen  int
}

// NewPhraseSet creates a set from the given entries.
func NewPhraseSet(entries []string) PhraseSet {
	p := PhraseSet{phrases: make(map[string]struct{}, len(entries)), maxLen: 1}
	p.add(entries)
	return p
}

func (p *PhraseSet) add(entries []string) {
	for _, e := range entries {
		key := phraseKey(strings.Fields(e))
		if key == "" {
			continue
		}
		p.phrases[key] = struct{}{}
		if l := phraseLen(key); l > p.maxLen {
			p.maxLen = l
		}
	}
}

// With returns a copy of the set with entries added.
func (p PhraseSet) With(entries []string) PhraseSet {
	next := PhraseSet{phrases: make(map[string]struct{}, len(p.phrases)+len(entries)), maxLen: p.maxLen}
	for k := range p.phrases {
		next.phrases[k] = struct{}{}
	}
	if next.maxLen == 0 {
		next.maxLen = 1
	}
	next.add(entries)
	return next
}

// Contains reports whether a single word or phrase is in the set.
func (p PhraseSet) Contains(s string) bool {
	_, ok := p.phrases[phraseKey(strings.Fields(s))]
	return ok
}

// MatchAt applies greedy longest-match at words[i] and returns how many
// words the matched phrase spans, or 0.
func (p PhraseSet) MatchAt(words []string, i int) int {
	if i < 0 || i >= len(words) {
		return 0
	}
	maxPhrase := p.maxLen
	if remaining := len(words) - i; maxPhrase > remaining {
		maxPhrase = remaining
	}
	for n := maxPhrase; n >= 1; n-- {
		if _, ok := p.phrases[phraseKey(words[i:i+n])]; ok {
			return n
		}
	}
	return 0
}

// Len returns the number of entries.
func (p PhraseSet) Len() int {
	return len(p.phrases)
}

func phraseKey(words []string) string {
	return strings.ToLower(strings.Join(words, " "))
}

func phraseLen(phrase string) int {
	if phrase == "" {
		return 1
	}
	return len(strings.Fields(phrase))
}
