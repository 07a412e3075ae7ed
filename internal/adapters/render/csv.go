package render

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corey/megagrep/internal/ports"
)

// csvHeader names the match row columns. Two columns are reserved for
// annotations added during review.
var csvHeader = []string{"filename", "line", "content", "keywords", "", "", "path"}

// WriteCSV emits one row per match: filename, line number, line text,
// pipe-joined keywords, two reserved blanks, absolute path. absRoot is the
// absolute scan root the relative match paths resolve against.
func WriteCSV(w io.Writer, absRoot string, matches []ports.Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range matches {
		rec := []string{
			m.File,
			strconv.Itoa(m.Line),
			m.Text,
			strings.Join(m.Keywords, "|"),
			"",
			"",
			filepath.Join(absRoot, m.File),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRankingCSV emits rank, count, key rows for a stat report.
func WriteRankingCSV(w io.Writer, title string, entries []ports.RankEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "count", title}); err != nil {
		return err
	}
	for i, e := range entries {
		if err := cw.Write([]string{strconv.Itoa(i + 1), strconv.Itoa(e.Count), e.Key}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
