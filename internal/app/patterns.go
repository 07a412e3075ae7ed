// Package app wires dictionaries, the walker, and the scan engine into
// complete runs.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/corey/megagrep/dicts"
	"github.com/corey/megagrep/internal/domain/dictionary"
)

// ErrEmptyPatternSet is fatal: the run has nothing to search for. It is
// reported before any file I/O is attempted.
var ErrEmptyPatternSet = errors.New("no keywords to search for (empty pattern set)")

// PatternSource describes where the active pattern set comes from.
type PatternSource struct {
	DictFiles []string // explicit dictionary files (-d)
	Sections  []string // section filter (-l)
	Words     []string // ad-hoc keywords (-w)
}

// ResolvePatterns loads dictionaries, applies the section filter, and
// prepends ad-hoc words. When neither dictionaries nor words are given, the
// embedded default dictionary is used. A dictionary that fails to load is
// skipped with a warning; only an empty resulting set is an error.
func ResolvePatterns(src PatternSource, warnf func(format string, args ...interface{})) ([]dictionary.Pattern, error) {
	if warnf == nil {
		warnf = func(string, ...interface{}) {}
	}

	var loaded []*dictionary.Dictionary

	if len(src.DictFiles) == 0 && len(src.Words) == 0 {
		data, err := fs.ReadFile(dicts.FS, dicts.DefaultName)
		if err != nil {
			return nil, fmt.Errorf("embedded dictionary: %w", err)
		}
		d, err := dictionary.Parse(string(data), dicts.DefaultName)
		if err != nil {
			return nil, fmt.Errorf("embedded dictionary: %w", err)
		}
		loaded = append(loaded, d)
	}

	for _, path := range src.DictFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			warnf("dictionary %s cannot be opened: %v", path, err)
			continue
		}
		d, err := dictionary.Parse(string(data), path)
		if err != nil {
			warnf("%v (dictionary skipped)", err)
			continue
		}
		loaded = append(loaded, d)
	}

	merged := dictionary.Merge(loaded...)
	pats, missing := merged.Patterns(src.Sections)
	for _, name := range missing {
		warnf("list %q matches no loaded dictionary section", name)
	}

	out := make([]dictionary.Pattern, 0, len(src.Words)+len(pats))
	for _, w := range src.Words {
		if w == "" {
			continue
		}
		out = append(out, dictionary.Pattern{Raw: w, Section: "word", Source: "command line"})
	}
	out = append(out, pats...)

	if len(out) == 0 {
		return nil, ErrEmptyPatternSet
	}
	return out, nil
}
