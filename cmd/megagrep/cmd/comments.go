package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/ports"
)

var commentsCmd = &cobra.Command{
	Use:   "comments [path]",
	Short: "Search comment bodies (#, //, /* */ and --tag openers)",
	Long: "Matches keywords only inside comments: one-line comments after #, //,\n" +
		"or the opener given with --tag, and C-style /* */ blocks, which may span\n" +
		"several lines.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatchCommand(args, ports.ModeComment)
	},
}
