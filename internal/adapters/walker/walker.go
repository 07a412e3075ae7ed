// Package walker lists the files a scan should visit. It applies include and
// exclude globs to base names, skips well-known junk directories, and offers
// a binary sniff so the runner can pass over non-text files.
package walker

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// skipDirs are directories never recursed into.
var skipDirs = map[string]bool{
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

// defaultMaxSize caps how large a file the scan will read.
const defaultMaxSize = 8 << 20

// FS walks the real filesystem. Exclude is checked first and wins; when an
// include list is set, files matching no include glob are skipped.
type FS struct {
	Include []string // base-name globs, e.g. "*.java"
	Exclude []string // base-name globs, e.g. "*.min.js"
	MaxSize int64    // bytes; 0 uses the default cap
}

// List returns the relative paths of all candidate files under root, sorted.
// If root is itself a file, it is the only candidate.
func (f *FS) List(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	maxSize := f.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if f.included(filepath.Base(absRoot)) {
			return []string{filepath.Base(absRoot)}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			if skipDirs[info.Name()] && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}
		if !f.included(info.Name()) {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// included applies exclude first, then include. With no globs at all,
// everything passes.
func (f *FS) included(name string) bool {
	for _, g := range f.Exclude {
		if ok, _ := filepath.Match(g, name); ok {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, g := range f.Include {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

// LooksBinary reports whether the first 512 bytes contain a NUL byte. The
// reader is rewound before returning, on the error paths too; a rewind
// failure surfaces as a read error in the scan that follows.
func LooksBinary(f io.ReadSeeker) bool {
	defer f.Seek(0, io.SeekStart)
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	return false
}
