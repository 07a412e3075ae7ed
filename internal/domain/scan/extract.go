// Package scan drives extraction and matching over file line streams and
// reduces the resulting match stream into rankings and a directory tree.
package scan

import (
	"strings"

	"github.com/corey/megagrep/internal/ports"
)

// Fragment is the piece of a line a mode exposes to pattern matching. It
// keeps the originating line so matches attribute correctly when several
// fragments come from one physical line or one comment block spans many.
type Fragment struct {
	Text string // text tested against patterns
	Raw  string // original, untruncated line text
	Line int    // 1-based line number
}

// commentState tracks C-style block comment accumulation.
type commentState int

const (
	outsideComment commentState = iota
	insideBlockComment
)

// Extractor produces the fragments of each line under a given mode. Use one
// Extractor per file: block comment state never crosses file boundaries.
type Extractor struct {
	mode  ports.Mode
	tag   string
	state commentState
	block []Fragment // buffered block comment lines, opener line first
}

// NewExtractor returns an extractor for the given mode. tag is an extra
// one-line comment opener recognized alongside # and //; empty disables it.
func NewExtractor(mode ports.Mode, tag string) *Extractor {
	return &Extractor{mode: mode, tag: tag}
}

// Extract returns the fragments the mode yields for this line. In comment
// mode, lines inside an open /* block buffer until the closer and are
// returned together once the block closes.
func (e *Extractor) Extract(line string, lineNum int) []Fragment {
	switch e.mode {
	case ports.ModeComment:
		return e.extractComment(line, lineNum)
	case ports.ModeString:
		return extractStrings(line, lineNum)
	default:
		return []Fragment{{Text: line, Raw: line, Line: lineNum}}
	}
}

func (e *Extractor) extractComment(line string, lineNum int) []Fragment {
	if e.state == insideBlockComment {
		if idx := strings.Index(line, "*/"); idx >= 0 {
			e.block = append(e.block, Fragment{Text: line[:idx], Raw: line, Line: lineNum})
			out := e.block
			e.block = nil
			e.state = outsideComment
			return out
		}
		e.block = append(e.block, Fragment{Text: line, Raw: line, Line: lineNum})
		return nil
	}

	opener, idx := e.firstOpener(line)
	if idx < 0 {
		return nil
	}
	if opener == "/*" {
		body := line[idx+2:]
		if end := strings.Index(body, "*/"); end >= 0 {
			return []Fragment{{Text: body[:end], Raw: line, Line: lineNum}}
		}
		e.state = insideBlockComment
		e.block = append(e.block, Fragment{Text: body, Raw: line, Line: lineNum})
		return nil
	}
	return []Fragment{{Text: line[idx+len(opener):], Raw: line, Line: lineNum}}
}

// firstOpener finds the earliest comment opener on the line. Returns -1 when
// the line has none.
func (e *Extractor) firstOpener(line string) (string, int) {
	openers := []string{"//", "/*", "#"}
	if e.tag != "" {
		openers = append(openers, e.tag)
	}
	best, bestIdx := "", -1
	for _, op := range openers {
		if i := strings.Index(line, op); i >= 0 && (bestIdx < 0 || i < bestIdx) {
			best, bestIdx = op, i
		}
	}
	return best, bestIdx
}

// extractStrings yields each maximal substring strictly between a pair of
// double quotes on one line. No escape handling; an unmatched trailing quote
// yields nothing.
func extractStrings(line string, lineNum int) []Fragment {
	parts := strings.Split(line, `"`)
	var frags []Fragment
	for i := 1; i < len(parts); i += 2 {
		if i == len(parts)-1 {
			break // odd quote count: drop the unterminated tail
		}
		frags = append(frags, Fragment{Text: parts[i], Raw: line, Line: lineNum})
	}
	return frags
}
