package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/adapters/history"
	"github.com/corey/megagrep/internal/adapters/render"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "Show recorded scan runs for a project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Runs to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	root, err := scanRoot(args)
	if err != nil {
		return err
	}

	store, err := history.Open(filepath.Join(root, historyDBFile))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	r := render.New(os.Stdout, resolveColor(flagColor))
	r.History(runs)
	return nil
}
