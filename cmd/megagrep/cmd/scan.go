package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/ports"
)

var scanCmd = &cobra.Command{
	Use:     "scan [path]",
	Aliases: []string{"keyword"},
	Short:   "Search raw source lines for dictionary keywords (default mode)",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatchCommand(args, ports.ModeKeyword)
	},
}
