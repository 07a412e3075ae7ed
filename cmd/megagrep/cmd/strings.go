package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/ports"
)

var stringsCmd = &cobra.Command{
	Use:   "strings [path]",
	Short: "Search double-quoted string contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatchCommand(args, ports.ModeString)
	},
}
