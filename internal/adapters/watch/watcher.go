// Package watch re-triggers scans when files under the project root change.
// It wraps fsnotify: directories are watched recursively, junk directories
// are skipped, and rapid event bursts (editors often write several times per
// save) coalesce behind a debounce timer.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ignoreDirs are never added to the watch list.
var ignoreDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	"target":       true,
	".megagrep":    true,
}

// DefaultDebounce is the quiet period required before onChange fires.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a directory tree for changes.
type Watcher struct {
	fw *fsnotify.Watcher
}

// New creates a watcher.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fw: fw}, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// Watch monitors root recursively and calls onChange after each debounced
// burst of file events. It blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, root string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if ignoreDirs[info.Name()] && path != absRoot {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			// New directories join the watch list.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !ignoreDirs[info.Name()] {
						w.fw.Add(event.Name)
					}
				}
			}
			if ignoreDirs[filepath.Base(filepath.Dir(event.Name))] {
				continue
			}
			if !pending {
				pending = true
			} else if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			// fsnotify errors are transient; keep watching.
		}
	}
}
