// Package dictionary parses megagrep dictionary files and compiles their
// keyword patterns into matchers.
//
// A dictionary file is line-oriented text:
//
//	# whole-line comment
//	[section_name]
//	keyword
//	multi word keyword # trailing comment
//	passw*d
//
// Section names are lowercased and unique within a dictionary; merging
// dictionaries concatenates sections that share a name.
package dictionary

import (
	"fmt"
	"regexp"
	"strings"
)

// ReservedRegexPrefix marks a keyword line as a regular expression. Regex
// compilation is a roadmap item: such patterns are parsed and carried through
// but never matched, so documented dictionaries keep loading.
const ReservedRegexPrefix = "regex:"

var sectionRe = regexp.MustCompile(`^\[([\w\-\+\.]+)\]$`)

// Pattern is one keyword entry: a literal, possibly containing * wildcards.
type Pattern struct {
	Raw     string // pattern text after comment stripping and trimming
	Section string // owning section name, lowercased
	Source  string // dictionary name the pattern came from
}

// Section groups the patterns declared under one [name] header.
type Section struct {
	Name     string
	Patterns []Pattern
}

// Dictionary holds the ordered sections of one or more dictionary files.
type Dictionary struct {
	Source   string
	Sections []Section
	byName   map[string]int
}

// MalformedError reports a dictionary file that cannot be used. The run
// continues with whatever other dictionaries loaded.
type MalformedError struct {
	Source string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("dictionary %s: line %d: %s", e.Source, e.Line, e.Reason)
}

// Parse reads a dictionary definition. A keyword line before any [section]
// header and a bracketed line with an invalid section name are fatal to this
// dictionary; everything else is stripped or tolerated best-effort.
func Parse(text, source string) (*Dictionary, error) {
	d := &Dictionary{Source: source, byName: make(map[string]int)}
	current := -1

	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			m := sectionRe.FindStringSubmatch(line)
			if m == nil {
				return nil, &MalformedError{
					Source: source,
					Line:   lineNum,
					Reason: fmt.Sprintf("invalid section header %q", line),
				}
			}
			name := strings.ToLower(m[1])
			if idx, ok := d.byName[name]; ok {
				current = idx
				continue
			}
			d.Sections = append(d.Sections, Section{Name: name})
			current = len(d.Sections) - 1
			d.byName[name] = current
			continue
		}

		if current < 0 {
			return nil, &MalformedError{
				Source: source,
				Line:   lineNum,
				Reason: fmt.Sprintf("keyword %q before any [section] header", line),
			}
		}
		d.Sections[current].Patterns = append(d.Sections[current].Patterns, Pattern{
			Raw:     line,
			Section: d.Sections[current].Name,
			Source:  source,
		})
	}
	return d, nil
}

// stripComment removes the substring from the first unescaped # to the end
// of the line. A \# sequence keeps a literal # in the keyword.
func stripComment(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != '#' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '#':
			return b.String()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// Merge combines dictionaries into one. Sections with the same name
// concatenate their pattern lists; section order is first-seen across the
// inputs. Duplicate patterns are kept — the compiled set collapses them at
// match time.
func Merge(dicts ...*Dictionary) *Dictionary {
	merged := &Dictionary{Source: "merged", byName: make(map[string]int)}
	for _, d := range dicts {
		if d == nil {
			continue
		}
		for _, sec := range d.Sections {
			if idx, ok := merged.byName[sec.Name]; ok {
				merged.Sections[idx].Patterns = append(merged.Sections[idx].Patterns, sec.Patterns...)
				continue
			}
			cp := Section{Name: sec.Name, Patterns: append([]Pattern(nil), sec.Patterns...)}
			merged.Sections = append(merged.Sections, cp)
			merged.byName[sec.Name] = len(merged.Sections) - 1
		}
	}
	return merged
}

// Patterns returns the patterns selected by the section filter, in section
// order. An empty filter selects everything. The second return value lists
// the filter names that matched no loaded section.
func (d *Dictionary) Patterns(filter []string) ([]Pattern, []string) {
	if len(filter) == 0 {
		var out []Pattern
		for _, sec := range d.Sections {
			out = append(out, sec.Patterns...)
		}
		return out, nil
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[strings.ToLower(name)] = false
	}

	var out []Pattern
	for _, sec := range d.Sections {
		if _, ok := wanted[sec.Name]; !ok {
			continue
		}
		wanted[sec.Name] = true
		out = append(out, sec.Patterns...)
	}

	var missing []string
	for _, name := range filter {
		if !wanted[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return out, missing
}

// SectionNames returns the section names in declaration order.
func (d *Dictionary) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, sec := range d.Sections {
		names[i] = sec.Name
	}
	return names
}
