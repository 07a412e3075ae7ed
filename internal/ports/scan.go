// Package ports defines the shared types and interfaces that connect the
// scanning core to its adapters (walker, renderer, history store).
package ports

// Mode selects which part of each line is exposed to pattern matching.
type Mode int

const (
	ModeKeyword Mode = iota // whole raw line
	ModeComment             // one-line and block comment bodies
	ModeString              // contents of double-quoted strings
	ModeName                // file names, reported at line 0
)

// String returns the mode label used in reports and run history.
func (m Mode) String() string {
	switch m {
	case ModeKeyword:
		return "keyword"
	case ModeComment:
		return "comment"
	case ModeString:
		return "string"
	case ModeName:
		return "name"
	default:
		return "unknown"
	}
}

// Match is one reported hit: a source location plus the keywords that fired
// on it. Keywords are deduplicated and kept in pattern scan order. A Match is
// immutable once created.
type Match struct {
	File     string // path relative to the scan root
	Line     int    // 1-based; 0 for name mode
	Text     string // original, untruncated line text
	Keywords []string
}

// RankEntry is one row of a ranking report.
type RankEntry struct {
	Key   string
	Count int
}

// KeywordMatcher tests a text fragment against the compiled pattern set.
// Implementations must be safe for concurrent use: the set is read-only
// after compilation.
type KeywordMatcher interface {
	// Match returns the raw pattern strings that match fragment, in pattern
	// scan order and without duplicates. Returns nil when nothing matches.
	Match(fragment string) []string
}

// Options is the fully resolved scan configuration handed to the runner.
type Options struct {
	Mode          Mode
	CaseSensitive bool
	CommentTag    string // extra one-line comment opener, e.g. "--" or "REM"
	Workers       int    // 0 means one worker per CPU
}
