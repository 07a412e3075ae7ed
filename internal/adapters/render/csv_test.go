package render

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/megagrep/internal/ports"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, filepath.FromSlash("/proj"), []ports.Match{
		{File: "auth.go", Line: 52, Text: `pwd = "a,b"`, Keywords: []string{"passw*d", "pwd"}},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"filename", "line", "content", "keywords", "", "", "path"}, rows[0])
	assert.Equal(t, "auth.go", rows[1][0])
	assert.Equal(t, "52", rows[1][1])
	// Commas in content survive quoting.
	assert.Equal(t, `pwd = "a,b"`, rows[1][2])
	assert.Equal(t, "passw*d|pwd", rows[1][3])
	assert.Equal(t, filepath.Join("/proj", "auth.go"), rows[1][6])
}

func TestWriteRankingCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRankingCSV(&buf, "keyword", []ports.RankEntry{
		{Key: "sql", Count: 8},
		{Key: "md5", Count: 2},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"rank", "count", "keyword"}, rows[0])
	assert.Equal(t, []string{"1", "8", "sql"}, rows[1])
	assert.Equal(t, []string{"2", "2", "md5"}, rows[2])
}
