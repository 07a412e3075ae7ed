package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dict")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolvePatterns_EmbeddedDefault(t *testing.T) {
	pats, err := ResolvePatterns(PatternSource{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, pats)
	assert.Equal(t, "megagrep.dict", pats[0].Source)
}

func TestResolvePatterns_ExplicitDictionary(t *testing.T) {
	path := writeDict(t, "[auth]\nlogin\npassw*d\n")

	pats, err := ResolvePatterns(PatternSource{DictFiles: []string{path}}, nil)
	require.NoError(t, err)
	require.Len(t, pats, 2)
	assert.Equal(t, "login", pats[0].Raw)
	assert.Equal(t, path, pats[0].Source)
}

func TestResolvePatterns_SectionFilterWarnsOnMissing(t *testing.T) {
	path := writeDict(t, "[auth]\nlogin\n[crypto]\naes\n")

	var warnings []string
	warnf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	pats, err := ResolvePatterns(PatternSource{
		DictFiles: []string{path},
		Sections:  []string{"crypto", "nosuch"},
	}, warnf)
	require.NoError(t, err)
	require.Len(t, pats, 1)
	assert.Equal(t, "aes", pats[0].Raw)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "nosuch")
}

func TestResolvePatterns_UnreadableDictSkipped(t *testing.T) {
	good := writeDict(t, "[auth]\nlogin\n")

	var warnings []string
	warnf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	pats, err := ResolvePatterns(PatternSource{
		DictFiles: []string{filepath.Join(t.TempDir(), "missing.dict"), good},
	}, warnf)
	require.NoError(t, err)
	require.Len(t, pats, 1)
	assert.Equal(t, "login", pats[0].Raw)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "cannot be opened")
}

func TestResolvePatterns_MalformedDictSkipped(t *testing.T) {
	bad := writeDict(t, "orphan before section\n")

	var warnings []string
	warnf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	_, err := ResolvePatterns(PatternSource{DictFiles: []string{bad}}, warnf)
	// The only dictionary failed, so the set is empty.
	require.ErrorIs(t, err, ErrEmptyPatternSet)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dictionary skipped")
}

func TestResolvePatterns_WordsPrepended(t *testing.T) {
	path := writeDict(t, "[auth]\nlogin\n")

	pats, err := ResolvePatterns(PatternSource{
		DictFiles: []string{path},
		Words:     []string{"hunter2", ""},
	}, nil)
	require.NoError(t, err)
	require.Len(t, pats, 2)
	assert.Equal(t, "hunter2", pats[0].Raw)
	assert.Equal(t, "command line", pats[0].Source)
	assert.Equal(t, "login", pats[1].Raw)
}

func TestResolvePatterns_WordsOnlySkipEmbedded(t *testing.T) {
	pats, err := ResolvePatterns(PatternSource{Words: []string{"token"}}, nil)
	require.NoError(t, err)
	require.Len(t, pats, 1)
	assert.Equal(t, "token", pats[0].Raw)
}
