// Megagrep locates areas worth manual review in a source tree by matching
// lines, comments, strings, and filenames against keyword dictionaries.
// It is not a static analyzer: it only surfaces candidate locations.
package main

import (
	"os"

	"github.com/corey/megagrep/cmd/megagrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
