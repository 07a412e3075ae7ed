package ports

import "time"

// Run summarizes one scan invocation for the history log. History is an
// audit trail only: rankings are recomputed from scratch on every run and
// never read back from previous runs.
type Run struct {
	Time        time.Time `json:"time"`
	Root        string    `json:"root"`
	Mode        string    `json:"mode"`
	Files       int       `json:"files"`
	Matches     int       `json:"matches"`
	TopKeywords []string  `json:"top_keywords,omitempty"`
}

// HistoryStore persists run summaries across invocations.
type HistoryStore interface {
	Append(run Run) error
	Recent(limit int) ([]Run, error)
	Close() error
}
