// Package history implements ports.HistoryStore using bbolt. Run summaries
// live under a single "runs" bucket keyed by timestamp, so a cursor walk from
// the end yields the most recent runs. Writes are transactional.
//
// History is strictly an audit log. Scan rankings are recomputed from scratch
// every run and never read back from here.
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/megagrep/internal/ports"
)

var bucketRuns = []byte("runs")

// Store implements ports.HistoryStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one run. Keys are big-endian UnixNano timestamps: fixed
// width, so they sort chronologically as bytes.
func (s *Store) Append(run ports.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(run.Time.UnixNano()))
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// Recent returns up to limit runs, most recent first. limit <= 0 returns all.
func (s *Store) Recent(limit int) ([]ports.Run, error) {
	var runs []ports.Run
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var run ports.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run %x: %w", k, err)
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
