package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/adapters/render"
	"github.com/corey/megagrep/internal/ports"
)

var statCmd = &cobra.Command{
	Use:   "stat [path]",
	Short: "Show keyword and file rankings instead of per-line results",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStat,
}

func runStat(cmd *cobra.Command, args []string) error {
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

	if flagCSV {
		if err := render.WriteRankingCSV(out, "keyword", res.Agg.Keywords.Top(s.topN)); err != nil {
			return err
		}
		return render.WriteRankingCSV(out, "file", res.Agg.Files.Top(s.topN))
	}
	r := render.New(out, useColor)
	r.Banner()
	r.Stat(res.Agg, res.Files, s.topN)
	return nil
}
