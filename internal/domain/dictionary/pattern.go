package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPattern is returned by Compile for patterns using a reserved
// prefix the matcher does not implement (currently "regex:"). Such patterns
// are skipped rather than silently matched as literals.
var ErrUnsupportedPattern = errors.New("unsupported pattern prefix")

// Matcher is one compiled keyword pattern: a predicate over a text fragment.
type Matcher struct {
	Pattern Pattern
	match   func(fragment string) bool
}

// Matches reports whether the fragment triggers this pattern.
func (m *Matcher) Matches(fragment string) bool {
	return m.match(fragment)
}

// Compile translates a keyword pattern into a predicate.
//
// Wildcard semantics are glob-style, not regex. A bare literal matches any
// fragment containing it as a substring — intentionally not word-bounded, so
// "sql" hits "sqloledb". A trailing * anchors the first segment to the start
// of the fragment, a leading * anchors the last segment to its end, and any
// other * is a zero-or-more-any-character gap between segments ("passw*d"
// hits "secret passwd"). A pattern of just "*" matches everything.
func Compile(p Pattern, caseSensitive bool) (*Matcher, error) {
	if strings.HasPrefix(p.Raw, ReservedRegexPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPattern, p.Raw)
	}

	pat := p.Raw
	if !caseSensitive {
		pat = strings.ToLower(pat)
	}
	fold := func(fragment string) string {
		if caseSensitive {
			return fragment
		}
		return strings.ToLower(fragment)
	}

	m := &Matcher{Pattern: p}

	if !strings.Contains(pat, "*") {
		m.match = func(fragment string) bool {
			return strings.Contains(fold(fragment), pat)
		}
		return m, nil
	}

	leading := strings.HasPrefix(pat, "*")
	trailing := strings.HasSuffix(pat, "*")
	var segs []string
	for _, s := range strings.Split(pat, "*") {
		if s != "" {
			segs = append(segs, s)
		}
	}

	switch {
	case len(segs) == 0:
		// Degenerate catch-all; preserved for dictionary authors.
		m.match = func(string) bool { return true }
	case !leading && trailing:
		first, rest := segs[0], segs[1:]
		m.match = func(fragment string) bool {
			f := fold(fragment)
			return strings.HasPrefix(f, first) && matchGap(f[len(first):], rest)
		}
	case leading && !trailing:
		last, head := segs[len(segs)-1], segs[:len(segs)-1]
		m.match = func(fragment string) bool {
			f := fold(fragment)
			return strings.HasSuffix(f, last) && matchGap(f[:len(f)-len(last)], head)
		}
	default:
		// Leading and trailing stars, or mid-pattern stars only: ordered
		// substring search with gaps.
		m.match = func(fragment string) bool {
			return matchGap(fold(fragment), segs)
		}
	}
	return m, nil
}

// matchGap reports whether the segments occur in order within the fragment,
// each starting at or after the end of the previous one.
func matchGap(fragment string, segs []string) bool {
	idx := 0
	for _, seg := range segs {
		j := strings.Index(fragment[idx:], seg)
		if j < 0 {
			return false
		}
		idx += j + len(seg)
	}
	return true
}

// Set is an ordered, deduplicated collection of compiled matchers. Match
// semantics operate on distinct pattern strings: duplicates across merged
// dictionaries collapse to one logical keyword here.
type Set struct {
	matchers []*Matcher
}

// NewSet compiles patterns in order, collapsing duplicate raw strings. The
// second return value lists patterns skipped because they are unsupported.
func NewSet(patterns []Pattern, caseSensitive bool) (*Set, []Pattern, error) {
	s := &Set{}
	seen := make(map[string]bool, len(patterns))
	var skipped []Pattern
	for _, p := range patterns {
		if seen[p.Raw] {
			continue
		}
		seen[p.Raw] = true
		m, err := Compile(p, caseSensitive)
		if err != nil {
			if errors.Is(err, ErrUnsupportedPattern) {
				skipped = append(skipped, p)
				continue
			}
			return nil, nil, err
		}
		s.matchers = append(s.matchers, m)
	}
	return s, skipped, nil
}

// Match returns the raw pattern strings matching the fragment, in pattern
// scan order, without duplicates.
func (s *Set) Match(fragment string) []string {
	var hits []string
	for _, m := range s.matchers {
		if m.Matches(fragment) {
			hits = append(hits, m.Pattern.Raw)
		}
	}
	return hits
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int { return len(s.matchers) }

// Matchers exposes the compiled matchers in scan order.
func (s *Set) Matchers() []*Matcher { return s.matchers }
