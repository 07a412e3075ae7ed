// Package ahocorasick implements ports.KeywordMatcher using a
// petar-dambovaliev/aho-corasick DFA. All wildcard-free patterns compile
// into one automaton and match in a single pass over the fragment; starred
// patterns fall back to the dictionary package's compiled matchers.
package ahocorasick

import (
	"strings"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/megagrep/internal/domain/dictionary"
)

// entry ties a position in pattern scan order to either an automaton
// pattern or a wildcard matcher.
type entry struct {
	raw      string
	wildcard *dictionary.Matcher // nil for automaton literals
	acIndex  int                 // automaton pattern index for literals
}

// Set is a compiled, read-only pattern set. Safe for concurrent use.
type Set struct {
	entries     []entry
	automaton   aho.AhoCorasick
	numLiterals int
	fold        bool
}

// NewSet compiles patterns in scan order, collapsing duplicate raw strings.
// The second return value lists patterns skipped because their prefix is
// unsupported (reserved "regex:" patterns).
func NewSet(patterns []dictionary.Pattern, caseSensitive bool) (*Set, []dictionary.Pattern, error) {
	s := &Set{fold: !caseSensitive}
	seen := make(map[string]bool, len(patterns))
	var skipped []dictionary.Pattern
	var literals []string

	for _, p := range patterns {
		if seen[p.Raw] {
			continue
		}
		seen[p.Raw] = true

		if strings.HasPrefix(p.Raw, dictionary.ReservedRegexPrefix) {
			skipped = append(skipped, p)
			continue
		}
		if !strings.Contains(p.Raw, "*") {
			// Literals and fragments fold with the same Unicode lowering the
			// wildcard matchers use, so both paths share one case policy.
			lit := p.Raw
			if s.fold {
				lit = strings.ToLower(lit)
			}
			s.entries = append(s.entries, entry{raw: p.Raw, acIndex: len(literals)})
			literals = append(literals, lit)
			continue
		}
		m, err := dictionary.Compile(p, caseSensitive)
		if err != nil {
			return nil, nil, err
		}
		s.entries = append(s.entries, entry{raw: p.Raw, wildcard: m})
	}

	if len(literals) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{DFA: true})
		s.automaton = builder.Build(literals)
		s.numLiterals = len(literals)
	}
	return s, skipped, nil
}

// Match returns the raw pattern strings matching the fragment, in pattern
// scan order, without duplicates.
func (s *Set) Match(fragment string) []string {
	var acHits []bool
	if s.numLiterals > 0 {
		folded := fragment
		if s.fold {
			folded = strings.ToLower(fragment)
		}
		iter := s.automaton.IterOverlapping(folded)
		for next := iter.Next(); next != nil; next = iter.Next() {
			if acHits == nil {
				acHits = make([]bool, s.numLiterals)
			}
			acHits[next.Pattern()] = true
		}
	}

	var hits []string
	for _, e := range s.entries {
		if e.wildcard != nil {
			if e.wildcard.Matches(fragment) {
				hits = append(hits, e.raw)
			}
			continue
		}
		if acHits != nil && acHits[e.acIndex] {
			hits = append(hits, e.raw)
		}
	}
	return hits
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int { return len(s.entries) }
