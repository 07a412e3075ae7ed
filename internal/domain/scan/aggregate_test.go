package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/megagrep/internal/ports"
)

func TestCounter_TopRanking(t *testing.T) {
	c := NewCounter()
	c.Add("sql", 1)
	c.Add("passwd", 1)
	c.Add("sql", 1)
	c.Add("token", 1)
	c.Add("sql", 1)

	top := c.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, ports.RankEntry{Key: "sql", Count: 3}, top[0])
	// passwd and token tie at 1; first-seen wins.
	assert.Equal(t, ports.RankEntry{Key: "passwd", Count: 1}, top[1])

	// n <= 0 returns the full ranking.
	assert.Len(t, c.Top(0), 3)
	assert.Equal(t, 5, c.Total())
}

func TestCounter_MergeReproducesSequentialOrder(t *testing.T) {
	// Merging partials in a fixed order matches a sequential accumulation.
	seq := NewCounter()
	for _, k := range []string{"a", "b", "a", "c", "b", "a"} {
		seq.Add(k, 1)
	}

	p1 := NewCounter()
	p1.Add("a", 1)
	p1.Add("b", 1)
	p1.Add("a", 1)
	p2 := NewCounter()
	p2.Add("c", 1)
	p2.Add("b", 1)
	p2.Add("a", 1)

	merged := NewCounter()
	merged.Merge(p1)
	merged.Merge(p2)

	assert.Equal(t, seq.Keys(), merged.Keys())
	assert.Equal(t, seq.Top(0), merged.Top(0))
}

func TestAggregate_Add(t *testing.T) {
	a := NewAggregate()
	a.Add(ports.Match{File: "a.go", Line: 1, Keywords: []string{"sql", "passwd"}})
	a.Add(ports.Match{File: "a.go", Line: 9, Keywords: []string{"sql"}})
	a.Add(ports.Match{File: "b.go", Line: 2, Keywords: []string{"sql"}})

	assert.Equal(t, 3, a.Keywords.Count("sql"))
	assert.Equal(t, 1, a.Keywords.Count("passwd"))
	assert.Equal(t, 2, a.Files.Count("a.go"))
	assert.Equal(t, 1, a.Files.Count("b.go"))

	per := a.FileKeywords("a.go")
	require.NotNil(t, per)
	assert.Equal(t, 2, per.Count("sql"))
	assert.Nil(t, a.FileKeywords("missing.go"))
}

func TestAggregate_MergeAssociative(t *testing.T) {
	m1 := ports.Match{File: "a.go", Line: 1, Keywords: []string{"sql"}}
	m2 := ports.Match{File: "b.go", Line: 1, Keywords: []string{"sql", "md5"}}
	m3 := ports.Match{File: "a.go", Line: 5, Keywords: []string{"md5"}}

	one := NewAggregate()
	for _, m := range []ports.Match{m1, m2, m3} {
		one.Add(m)
	}

	left := NewAggregate()
	left.Add(m1)
	mid := NewAggregate()
	mid.Add(m2)
	right := NewAggregate()
	right.Add(m3)

	combined := NewAggregate()
	combined.Merge(left)
	combined.Merge(mid)
	combined.Merge(right)

	assert.Equal(t, one.Keywords.Top(0), combined.Keywords.Top(0))
	assert.Equal(t, one.Files.Top(0), combined.Files.Top(0))
	assert.Equal(t, one.FileKeywords("a.go").Top(0), combined.FileKeywords("a.go").Top(0))
}
