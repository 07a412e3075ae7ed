package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/megagrep/internal/domain/dictionary"
	"github.com/corey/megagrep/internal/ports"
)

func testMatcher(t *testing.T, raws ...string) ports.KeywordMatcher {
	t.Helper()
	pats := make([]dictionary.Pattern, len(raws))
	for i, r := range raws {
		pats[i] = dictionary.Pattern{Raw: r}
	}
	s, _, err := dictionary.NewSet(pats, false)
	require.NoError(t, err)
	return s
}

func TestScanFile_KeywordMode(t *testing.T) {
	src := strings.Join([]string{
		"package auth",
		"",
		`// reads passwd from env`,
		"func Login() {}",
	}, "\n")

	g := NewEngine(testMatcher(t, "passw*d", "login"), ports.ModeKeyword, "")
	matches, err := g.ScanFile("auth/login.go", strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, 3, matches[0].Line)
	assert.Equal(t, []string{"passw*d"}, matches[0].Keywords)
	assert.Equal(t, 4, matches[1].Line)
	assert.Equal(t, []string{"login"}, matches[1].Keywords)
	assert.Equal(t, "auth/login.go", matches[1].File)
	assert.Equal(t, "func Login() {}", matches[1].Text)
}

func TestScanFile_OneMatchPerLine(t *testing.T) {
	// Two string fragments on one line with hits fold into one match.
	src := `check("passwd", "token")`
	g := NewEngine(testMatcher(t, "passwd", "token"), ports.ModeString, "")
	matches, err := g.ScanFile("f.go", strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, []string{"passwd", "token"}, matches[0].Keywords)
	assert.Equal(t, src, matches[0].Text)
}

func TestScanFile_BlockCommentAttribution(t *testing.T) {
	src := strings.Join([]string{
		"x := 1",
		"/* TODO revisit",
		"the passwd cache */",
		"y := 2",
	}, "\n")

	g := NewEngine(testMatcher(t, "TODO", "passwd"), ports.ModeComment, "")
	matches, err := g.ScanFile("f.go", strings.NewReader(src))
	require.NoError(t, err)

	// Buffered block lines still report their own line numbers.
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, []string{"TODO"}, matches[0].Keywords)
	assert.Equal(t, "/* TODO revisit", matches[0].Text)
	assert.Equal(t, 3, matches[1].Line)
	assert.Equal(t, []string{"passwd"}, matches[1].Keywords)
}

func TestScanFile_UnclosedBlockDropped(t *testing.T) {
	src := "code\n/* TODO never closed\nstill inside"
	g := NewEngine(testMatcher(t, "TODO"), ports.ModeComment, "")
	matches, err := g.ScanFile("f.go", strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScanFile_SkipsInvalidUTF8Lines(t *testing.T) {
	src := "passwd here\n\xff\xfe passwd bad\npasswd again\n"
	g := NewEngine(testMatcher(t, "passwd"), ports.ModeKeyword, "")
	matches, err := g.ScanFile("f.go", strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 3, matches[1].Line)
}

func TestScanName(t *testing.T) {
	g := NewEngine(testMatcher(t, "passw*d", "id_rsa"), ports.ModeName, "")

	matches := g.ScanName("etc/passwd")
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Line)
	assert.Equal(t, "passwd", matches[0].Text)
	assert.Equal(t, "etc/passwd", matches[0].File)
	assert.Equal(t, []string{"passw*d"}, matches[0].Keywords)

	assert.Empty(t, g.ScanName("src/main.go"))
}
