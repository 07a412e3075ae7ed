package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/corey/megagrep/internal/adapters/ahocorasick"
	"github.com/corey/megagrep/internal/adapters/history"
	"github.com/corey/megagrep/internal/adapters/render"
	"github.com/corey/megagrep/internal/adapters/walker"
	"github.com/corey/megagrep/internal/app"
	"github.com/corey/megagrep/internal/config"
	"github.com/corey/megagrep/internal/ports"
)

// historyDBFile is where run summaries are recorded, relative to the root.
const historyDBFile = ".megagrep/history.db"

// nowFunc is swapped in tests for deterministic history entries.
var nowFunc = time.Now

// scanSetup is everything a mode command needs to run and render a scan.
type scanSetup struct {
	root    string // absolute scan root
	runner  *app.Runner
	diag    *render.Diag
	cfg     *config.Config
	topN    int
	matcher ports.KeywordMatcher
}

// prepare resolves config, dictionaries, and the walker into a ready runner.
// Flags win over .megagrep.yaml values.
func prepare(args []string, mode ports.Mode) (*scanSetup, error) {
	root, err := scanRoot(args)
	if err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	diag := render.NewDiag(os.Stderr, flagVerbose)

	cfg, err := config.Load(absRoot)
	if err != nil {
		diag.Warnf("%v (config ignored)", err)
		cfg = &config.Config{}
	}

	dictFiles := flagDicts
	if len(dictFiles) == 0 {
		dictFiles = cfg.Dictionaries
	}
	lists := flagLists
	if len(lists) == 0 {
		lists = cfg.Lists
	}
	include := flagInclude
	if len(include) == 0 {
		include = cfg.Include
	}
	exclude := flagExclude
	if len(cfg.Exclude) > 0 && !rootCmd.PersistentFlags().Changed("exclude") {
		exclude = cfg.Exclude
	}
	sensitive := flagSensitive || cfg.Sensitive
	workers := flagWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	tag := flagTag
	if tag == "" {
		tag = cfg.CommentTag
	}
	topN := flagTop
	if !rootCmd.PersistentFlags().Changed("top") && cfg.Top > 0 {
		topN = cfg.Top
	}

	pats, err := app.ResolvePatterns(app.PatternSource{
		DictFiles: dictFiles,
		Sections:  lists,
		Words:     flagWords,
	}, diag.Warnf)
	if err != nil {
		return nil, err
	}
	for _, p := range pats {
		if p.Raw == "*" {
			diag.Warnf("pattern %q in %s matches every line", p.Raw, p.Source)
		}
	}

	set, skipped, err := ahocorasick.NewSet(pats, sensitive)
	if err != nil {
		return nil, err
	}
	for _, p := range skipped {
		diag.Warnf("pattern %q in %s uses an unsupported prefix, ignored", p.Raw, p.Source)
	}
	if set.Len() == 0 {
		return nil, app.ErrEmptyPatternSet
	}
	diag.Infof("active patterns: %d (mode: %s)", set.Len(), mode)

	runner := &app.Runner{
		Matcher: set,
		Walker:  &walker.FS{Include: include, Exclude: exclude},
		Opts: ports.Options{
			Mode:          mode,
			CaseSensitive: sensitive,
			CommentTag:    tag,
			Workers:       workers,
		},
		Warnf: diag.Warnf,
		Infof: diag.Infof,
	}

	return &scanSetup{
		root:    absRoot,
		runner:  runner,
		diag:    diag,
		cfg:     cfg,
		topN:    topN,
		matcher: set,
	}, nil
}

// run executes the scan with interrupt handling and records it to history.
func (s *scanSetup) run() (*app.Result, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := s.runner.Run(ctx, s.root)
	if err != nil {
		return nil, err
	}
	s.record(res)
	return res, nil
}

// record appends the run summary to the history log. Best effort: a locked
// or unwritable database only costs the history entry.
func (s *scanSetup) record(res *app.Result) {
	store, err := history.Open(filepath.Join(s.root, historyDBFile))
	if err != nil {
		s.diag.Infof("history not recorded: %v", err)
		return
	}
	defer store.Close()

	top := res.Agg.Keywords.Top(3)
	kws := make([]string, len(top))
	for i, e := range top {
		kws[i] = e.Key
	}
	run := ports.Run{
		Time:        nowFunc(),
		Root:        s.root,
		Mode:        s.runner.Opts.Mode.String(),
		Files:       res.Files,
		Matches:     len(res.Matches),
		TopKeywords: kws,
	}
	if err := store.Append(run); err != nil {
		s.diag.Infof("history not recorded: %v", err)
	}
}

// output opens the report destination and decides color. Writing to a file
// or a pipe disables color unless --color=always.
func (s *scanSetup) output() (io.Writer, func(), bool, error) {
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return nil, nil, false, fmt.Errorf("cannot create output file: %w", err)
		}
		useColor := flagColor == "always"
		return f, func() { f.Close() }, useColor, nil
	}
	return os.Stdout, func() {}, resolveColor(flagColor), nil
}

// runMatchCommand is the shared body of the per-line modes (scan, comments,
// strings, names): scan, then emit flat results or CSV.
func runMatchCommand(args []string, mode ports.Mode) error {
	s, err := prepare(args, mode)
	if err != nil {
		return err
	}
	res, err := s.run()
	if err != nil {
		return err
	}

	out, done, useColor, err := s.output()
	if err != nil {
		return err
	}
	defer done()

	if flagCSV {
		return render.WriteCSV(out, s.root, res.Matches)
	}
	r := render.New(out, useColor)
	r.Banner()
	r.Results(res.Matches)
	s.diag.Infof("%d matches in %d files", len(res.Matches), res.Files)
	return nil
}
