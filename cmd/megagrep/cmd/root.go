package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagDicts     []string
	flagLists     []string
	flagWords     []string
	flagSensitive bool
	flagInclude   []string
	flagExclude   []string
	flagTag       string
	flagCSV       bool
	flagOutput    string
	flagColor     string
	flagVerbose   bool
	flagWorkers   int
	flagTop       int
)

var rootCmd = &cobra.Command{
	Use:   "megagrep",
	Short: "Keyword scanner for code review",
	Long: "Locates code worth manual inspection by matching source lines, comments,\n" +
		"strings, and filenames against curated keyword dictionaries.\n" +
		"Not a static analyzer: it only surfaces candidate locations.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// scanRoot resolves the positional path argument (cwd by default).
func scanRoot(args []string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if len(args) > 0 {
		if filepath.IsAbs(args[0]) {
			dir = args[0]
		} else {
			dir = filepath.Join(dir, args[0])
		}
	}
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("path %s cannot be opened: %w", dir, err)
	}
	return dir, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringSliceVarP(&flagDicts, "dict", "d", nil, "Dictionary file(s) to load")
	pf.StringSliceVarP(&flagLists, "list", "l", nil, "Only use these dictionary section(s)")
	pf.StringSliceVarP(&flagWords, "word", "w", nil, "Search for specific word(s)")
	pf.BoolVarP(&flagSensitive, "sensitive", "s", false, "Case-sensitive matching (default is insensitive)")
	pf.StringSliceVarP(&flagInclude, "include", "i", nil, "File glob(s) to include (ex: *.java)")
	pf.StringSliceVarP(&flagExclude, "exclude", "x", []string{"*.min.js"}, "File glob(s) to exclude")
	pf.StringVar(&flagTag, "tag", "", "Extra one-line comment opener (ex: -- for SQL)")
	pf.BoolVarP(&flagCSV, "csv", "c", false, "CSV output (default is colored text)")
	pf.StringVarP(&flagOutput, "file", "f", "", "Write output to a file")
	pf.StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose diagnostics")
	pf.IntVar(&flagWorkers, "workers", 0, "Scan workers (0 = one per CPU)")
	pf.IntVar(&flagTop, "top", 10, "Entries per ranking")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(stringsCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dictsCmd)
}
