package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/adapters/render"
	"github.com/corey/megagrep/internal/ports"
)

var lsTopK int

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "Show a directory tree annotated with match counts and top keywords",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().IntVar(&lsTopK, "keywords", 3, "Top keywords shown per node")
}

func runLs(cmd *cobra.Command, args []string) error {
	s, err := prepare(args, ports.ModeKeyword)
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

	r := render.New(out, useColor)
	r.Tree(res.Agg.Tree(filepath.Base(s.root)), lsTopK)
	return nil
}
