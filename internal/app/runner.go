package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/corey/megagrep/internal/adapters/walker"
	"github.com/corey/megagrep/internal/domain/scan"
	"github.com/corey/megagrep/internal/ports"
)

// Runner executes one scan: walk the tree, match files in parallel, and
// merge partial results deterministically.
type Runner struct {
	Matcher ports.KeywordMatcher
	Walker  ports.Walker
	Opts    ports.Options
	Warnf   func(format string, args ...interface{})
	Infof   func(format string, args ...interface{})
}

// Result carries everything the renderers consume.
type Result struct {
	Matches []ports.Match
	Agg     *scan.Aggregate
	Files   int // files scanned (skipped files excluded)
}

// partial is one file's scan output. Files are independent, so partials can
// be produced by any worker and merged afterward.
type partial struct {
	matches []ports.Match
	agg     *scan.Aggregate
}

// Run scans root. Cancelling ctx stops dispatching new files; results from
// files already scanned are still merged and returned.
func (r *Runner) Run(ctx context.Context, root string) (*Result, error) {
	files, err := r.Walker.List(root)
	if err != nil {
		return nil, err
	}

	partials := make([]*partial, len(files))

	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	workers := r.Opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eng := scan.NewEngine(r.Matcher, r.Opts.Mode, r.Opts.CommentTag)
			for i := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}
				partials[i] = r.scanOne(eng, root, files[i])
			}
		}()
	}
	wg.Wait()

	// Merge in walker order so ranking tie-breaks and match ordering are
	// byte-identical across runs regardless of worker scheduling.
	res := &Result{Agg: scan.NewAggregate()}
	for _, p := range partials {
		if p == nil {
			continue
		}
		res.Files++
		res.Matches = append(res.Matches, p.matches...)
		res.Agg.Merge(p.agg)
	}

	if ctx.Err() != nil {
		r.warnf("scan interrupted: results cover %d of %d files", res.Files, len(files))
	}
	return res, nil
}

// scanOne scans a single file. Unreadable or binary files are skipped, never
// fatal to the batch. Returns nil when the file was skipped entirely.
func (r *Runner) scanOne(eng *scan.Engine, root, rel string) *partial {
	var matches []ports.Match

	if r.Opts.Mode == ports.ModeName {
		matches = eng.ScanName(rel)
	} else {
		f, err := os.Open(filepath.Join(root, rel))
		if err != nil {
			r.warnf("cannot open %s: %v", rel, err)
			return nil
		}
		defer f.Close()

		if walker.LooksBinary(f) {
			r.infof("skipping binary file %s", rel)
			return nil
		}
		matches, err = eng.ScanFile(rel, f)
		if err != nil {
			// Keep whatever matched before the read error.
			r.warnf("error reading %s: %v", rel, err)
		}
	}

	agg := scan.NewAggregate()
	for _, m := range matches {
		agg.Add(m)
	}
	return &partial{matches: matches, agg: agg}
}

func (r *Runner) warnf(format string, args ...interface{}) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
	}
}

func (r *Runner) infof(format string, args ...interface{}) {
	if r.Infof != nil {
		r.Infof(format, args...)
	}
}
