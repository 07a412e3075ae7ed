package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/megagrep/internal/domain/dictionary"
)

func buildSet(t *testing.T, caseSensitive bool, raws ...string) *Set {
	t.Helper()
	pats := make([]dictionary.Pattern, len(raws))
	for i, r := range raws {
		pats[i] = dictionary.Pattern{Raw: r}
	}
	s, _, err := NewSet(pats, caseSensitive)
	require.NoError(t, err)
	return s
}

func TestSet_LiteralsSinglePass(t *testing.T) {
	s := buildSet(t, false, "login", "auth", "session")

	hits := s.Match("auth login creates session")
	assert.Equal(t, []string{"login", "auth", "session"}, hits)

	assert.Empty(t, s.Match("hello world"))
}

func TestSet_OverlappingLiterals(t *testing.T) {
	// "log" sits inside "login"; overlapping iteration finds both.
	s := buildSet(t, false, "log", "login")
	assert.Equal(t, []string{"log", "login"}, s.Match("login page"))
}

func TestSet_CaseFolding(t *testing.T) {
	s := buildSet(t, false, "SELECT")
	assert.Equal(t, []string{"SELECT"}, s.Match("select * from users"))

	s = buildSet(t, true, "SELECT")
	assert.Empty(t, s.Match("select * from users"))
	assert.Equal(t, []string{"SELECT"}, s.Match("SELECT 1"))
}

func TestSet_UnicodeCaseFolding(t *testing.T) {
	// Non-ASCII literals fold the same way the wildcard path does.
	s := buildSet(t, false, "passwörter")
	assert.Equal(t, []string{"passwörter"}, s.Match("die PASSWÖRTER liste"))

	s = buildSet(t, true, "PASSWÖRTER")
	assert.Empty(t, s.Match("die passwörter liste"))
	assert.Equal(t, []string{"PASSWÖRTER"}, s.Match("die PASSWÖRTER liste"))
}

func TestSet_MixesLiteralsAndWildcards(t *testing.T) {
	s := buildSet(t, false, "passw*d", "sql", "3*DES")
	assert.Equal(t, 3, s.Len())

	hits := s.Match("sql query for passwd")
	// Scan order is pattern declaration order, wildcards included.
	assert.Equal(t, []string{"passw*d", "sql"}, hits)

	assert.Equal(t, []string{"3*DES"}, s.Match("switch to 3DES"))
}

func TestSet_SkipsRegexPatterns(t *testing.T) {
	pats := []dictionary.Pattern{
		{Raw: "login"},
		{Raw: "regex:pass(word)?", Source: "a.dict"},
	}
	s, skipped, err := NewSet(pats, false)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	require.Len(t, skipped, 1)
	assert.Equal(t, "regex:pass(word)?", skipped[0].Raw)

	// Skipped patterns never match, not even literally.
	assert.Empty(t, s.Match("regex:password"))
}

func TestSet_DeduplicatesRaws(t *testing.T) {
	s := buildSet(t, false, "sql", "sql", "passw*d", "passw*d")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"sql"}, s.Match("sql sql sql"))
}

func TestSet_EmptyInput(t *testing.T) {
	s := buildSet(t, false)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Match("anything"))
}
