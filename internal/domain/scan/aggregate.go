package scan

import (
	"sort"

	"github.com/corey/megagrep/internal/ports"
)

// Counter accumulates counts keyed by string, remembering first-seen
// insertion order so ranking tie-breaks are deterministic across runs.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments key by n, registering it on first sight.
func (c *Counter) Add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Count returns the accumulated count for key.
func (c *Counter) Count(key string) int { return c.counts[key] }

// Len returns the number of distinct keys.
func (c *Counter) Len() int { return len(c.order) }

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	t := 0
	for _, n := range c.counts {
		t += n
	}
	return t
}

// Keys returns the keys in first-seen order.
func (c *Counter) Keys() []string { return c.order }

// Merge folds other into c. Counts add; keys new to c keep other's order
// after c's own. Merging partials in a fixed order reproduces the sequential
// first-seen order exactly.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		c.Add(key, other.counts[key])
	}
}

// Top returns the n highest counts, descending, ties broken by first-seen
// order. n <= 0 returns the full ranking.
func (c *Counter) Top(n int) []ports.RankEntry {
	entries := make([]ports.RankEntry, len(c.order))
	for i, key := range c.order {
		entries[i] = ports.RankEntry{Key: key, Count: c.counts[key]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Aggregate reduces a match stream into keyword and file rankings plus the
// per-file keyword counters the directory tree is built from. Merge is
// associative and commutative over counts, so per-worker partial aggregates
// combine safely after a parallel scan.
type Aggregate struct {
	Keywords *Counter
	Files    *Counter
	perFile  map[string]*Counter
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Keywords: NewCounter(),
		Files:    NewCounter(),
		perFile:  make(map[string]*Counter),
	}
}

// Add folds one match record in. Each match contributes 1 to every one of
// its distinct keywords and 1 to its file's count.
func (a *Aggregate) Add(m ports.Match) {
	a.Files.Add(m.File, 1)
	per := a.perFile[m.File]
	if per == nil {
		per = NewCounter()
		a.perFile[m.File] = per
	}
	for _, kw := range m.Keywords {
		a.Keywords.Add(kw, 1)
		per.Add(kw, 1)
	}
}

// Merge folds another aggregate into this one.
func (a *Aggregate) Merge(other *Aggregate) {
	if other == nil {
		return
	}
	a.Keywords.Merge(other.Keywords)
	a.Files.Merge(other.Files)
	for _, file := range other.Files.Keys() {
		per := a.perFile[file]
		if per == nil {
			per = NewCounter()
			a.perFile[file] = per
		}
		per.Merge(other.perFile[file])
	}
}

// FileKeywords returns the keyword counter for one file, nil if the file
// had no matches.
func (a *Aggregate) FileKeywords(file string) *Counter { return a.perFile[file] }
