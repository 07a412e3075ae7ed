package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/adapters/render"
	"github.com/corey/megagrep/internal/adapters/watch"
	"github.com/corey/megagrep/internal/ports"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rescan on file changes and print new results",
	Long: "Runs a keyword scan, then watches the tree and rescans after each\n" +
		"debounced burst of file changes. Interrupt to stop.",
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before a rescan")
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := prepare(args, ports.ModeKeyword)
	if err != nil {
		return err
	}

	rescan := func() {
		res, err := s.run()
		if err != nil {
			s.diag.Warnf("scan failed: %v", err)
			return
		}
		r := render.New(os.Stdout, resolveColor(flagColor))
		r.Results(res.Matches)
		fmt.Printf("-- %d matches in %d files, watching %s --\n", len(res.Matches), res.Files, s.root)
	}
	rescan()

	w, err := watch.New()
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = w.Watch(ctx, s.root, watchDebounce, rescan)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
