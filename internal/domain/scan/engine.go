package scan

import (
	"bufio"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/corey/megagrep/internal/ports"
)

// Line buffer bounds for the scanner. Minified or generated sources can carry
// very long lines; anything beyond maxLineBytes fails the scan of that file.
const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 1 << 20
)

// Engine runs extraction and matching over file line streams. An Engine is
// stateless across files (each ScanFile builds a fresh extractor), so one
// instance per worker is safe.
type Engine struct {
	matcher ports.KeywordMatcher
	mode    ports.Mode
	tag     string
}

// NewEngine creates a scan engine over a compiled pattern set.
func NewEngine(matcher ports.KeywordMatcher, mode ports.Mode, tag string) *Engine {
	return &Engine{matcher: matcher, mode: mode, tag: tag}
}

// ScanFile reads r line by line and returns one Match per line with at least
// one hit. Lines that are not valid UTF-8 are skipped; the rest of the file
// still scans. path is recorded on the matches as given.
func (g *Engine) ScanFile(path string, r io.Reader) ([]ports.Match, error) {
	ex := NewExtractor(g.mode, g.tag)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	var matches []ports.Match
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !utf8.ValidString(line) {
			continue
		}
		g.record(path, ex.Extract(line, lineNum), &matches)
	}
	// An unclosed /* block at EOF is dropped with the extractor.
	return matches, sc.Err()
}

// ScanName matches the file's base name as a single fragment at line 0.
func (g *Engine) ScanName(path string) []ports.Match {
	base := filepath.Base(path)
	hits := g.matcher.Match(base)
	if len(hits) == 0 {
		return nil
	}
	return []ports.Match{{File: path, Line: 0, Text: base, Keywords: hits}}
}

// record tests fragments and folds hits into matches, one Match per line.
// Fragments arrive in ascending line order, so merging with the previous
// match is enough to collapse multiple fragments from one line.
func (g *Engine) record(path string, frags []Fragment, matches *[]ports.Match) {
	for _, frag := range frags {
		hits := g.matcher.Match(frag.Text)
		if len(hits) == 0 {
			continue
		}
		if n := len(*matches); n > 0 && (*matches)[n-1].Line == frag.Line {
			last := &(*matches)[n-1]
			last.Keywords = mergeKeywords(last.Keywords, hits)
			continue
		}
		*matches = append(*matches, ports.Match{
			File:     path,
			Line:     frag.Line,
			Text:     frag.Raw,
			Keywords: hits,
		})
	}
}

// mergeKeywords appends the keywords of hits not already present, preserving
// first-seen order.
func mergeKeywords(have, hits []string) []string {
	seen := make(map[string]bool, len(have))
	for _, k := range have {
		seen[k] = true
	}
	for _, k := range hits {
		if !seen[k] {
			seen[k] = true
			have = append(have, k)
		}
	}
	return have
}
