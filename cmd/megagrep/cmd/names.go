package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/ports"
)

var namesCmd = &cobra.Command{
	Use:   "names [path]",
	Short: "Search file names instead of contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatchCommand(args, ports.ModeName)
	},
}
