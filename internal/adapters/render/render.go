// Package render formats scan output: colored per-line results, the stat
// report, the ls-style tree, CSV rows, and stderr diagnostics.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/corey/megagrep/internal/domain/scan"
	"github.com/corey/megagrep/internal/ports"
)

const ruleWidth = 79

// Renderer writes reports to a single destination. Color is decided once at
// construction (writing to a file or a pipe disables it).
type Renderer struct {
	w    io.Writer
	file func(a ...interface{}) string
	num  func(a ...interface{}) string
	kw   func(a ...interface{}) string
	dim  func(a ...interface{}) string
	head func(a ...interface{}) string
}

// New creates a renderer. useColor false yields plain text.
func New(w io.Writer, useColor bool) *Renderer {
	paint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		if !useColor {
			return fmt.Sprint
		}
		return color.New(attrs...).SprintFunc()
	}
	return &Renderer{
		w:    w,
		file: paint(color.FgCyan),
		num:  paint(color.FgGreen),
		kw:   paint(color.FgYellow),
		dim:  paint(color.FgHiBlack),
		head: paint(color.Bold),
	}
}

// Banner prints the run header: a dashed rule, the tool name, another rule.
func (r *Renderer) Banner() {
	rule := strings.Repeat("-", ruleWidth)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, r.head(center(" MEGAGREP ", ruleWidth)))
	fmt.Fprintln(r.w, rule)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

// Results prints one line per match: file:line: text  [keywords]. Name-mode
// matches (line 0) omit the line number and text.
func (r *Renderer) Results(matches []ports.Match) {
	for _, m := range matches {
		kws := r.kw("["+strings.Join(m.Keywords, ", ")+"]")
		if m.Line == 0 {
			fmt.Fprintf(r.w, "%s  %s\n", r.file(m.File), kws)
			continue
		}
		fmt.Fprintf(r.w, "%s:%s: %s  %s\n",
			r.file(m.File), r.num(m.Line), strings.TrimRight(m.Text, " \t"), kws)
	}
}

// Stat prints the keyword and file rankings.
func (r *Renderer) Stat(agg *scan.Aggregate, filesScanned, topN int) {
	fmt.Fprintf(r.w, "%s\n", r.head("Scan summary"))
	fmt.Fprintf(r.w, "  Files scanned:  %d\n", filesScanned)
	fmt.Fprintf(r.w, "  Files with hits: %d\n", agg.Files.Len())
	fmt.Fprintf(r.w, "  Total matches:  %d\n\n", agg.Files.Total())

	r.ranking("Top keywords", agg.Keywords.Top(topN))
	fmt.Fprintln(r.w)
	r.ranking("Top files", agg.Files.Top(topN))
}

func (r *Renderer) ranking(title string, entries []ports.RankEntry) {
	fmt.Fprintf(r.w, "%s\n", r.head(title))
	if len(entries) == 0 {
		fmt.Fprintln(r.w, "  (no matches)")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(r.w, "  %2d. %s %s\n", i+1, r.num(fmt.Sprintf("%6d", e.Count)), e.Key)
	}
}

// Tree prints a filesystem-style listing annotated with per-node counts and
// top keywords.
func (r *Renderer) Tree(root *scan.Node, topK int) {
	fmt.Fprintf(r.w, "%s%s\n", r.head(root.Name), r.annotation(root, topK))
	r.walkTree(root, "", topK)
}

func (r *Renderer) walkTree(n *scan.Node, prefix string, topK int) {
	kids := n.Children()
	for i, c := range kids {
		isLast := i == len(kids)-1
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		name := c.Name
		if c.IsDir {
			name += "/"
		}
		fmt.Fprintf(r.w, "%s%s%s%s\n", prefix, connector, r.file(name), r.annotation(c, topK))
		if c.IsDir {
			newPrefix := prefix + "│   "
			if isLast {
				newPrefix = prefix + "    "
			}
			r.walkTree(c, newPrefix, topK)
		}
	}
}

// annotation renders the "< N results | Top: k1, k2, k3 >" suffix.
func (r *Renderer) annotation(n *scan.Node, topK int) string {
	if n.Count == 0 {
		return ""
	}
	tops := n.TopKeywords(topK)
	names := make([]string, len(tops))
	for i, e := range tops {
		names[i] = e.Key
	}
	if len(names) == 0 {
		return r.dim(fmt.Sprintf(" < %d results >", n.Count))
	}
	return r.dim(fmt.Sprintf(" < %d results | Top: %s >", n.Count, strings.Join(names, ", ")))
}

// History prints recorded runs, most recent first.
func (r *Renderer) History(runs []ports.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(r.w, "no recorded runs")
		return
	}
	for _, run := range runs {
		fmt.Fprintf(r.w, "%s  %s %s  %s\n",
			r.num(run.Time.Format("2006-01-02 15:04:05")),
			run.Mode,
			r.file(run.Root),
			fmt.Sprintf("%d matches in %d files", run.Matches, run.Files))
		if len(run.TopKeywords) > 0 {
			fmt.Fprintf(r.w, "    %s\n", r.dim("top: "+strings.Join(run.TopKeywords, ", ")))
		}
	}
}
