package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/megagrep/internal/adapters/ahocorasick"
	"github.com/corey/megagrep/internal/adapters/render"
	"github.com/corey/megagrep/internal/app"
)

var dictsCmd = &cobra.Command{
	Use:   "dicts",
	Short: "List the loaded dictionaries, sections, and pattern counts",
	Args:  cobra.NoArgs,
	RunE:  runDicts,
}

func runDicts(cmd *cobra.Command, args []string) error {
	diag := render.NewDiag(os.Stderr, flagVerbose)
	pats, err := app.ResolvePatterns(app.PatternSource{
		DictFiles: flagDicts,
		Sections:  flagLists,
		Words:     flagWords,
	}, diag.Warnf)
	if err != nil {
		return err
	}

	// Regroup by source and section, preserving resolution order.
	type key struct{ source, section string }
	counts := make(map[key]int)
	var order []key
	for _, p := range pats {
		k := key{p.Source, p.Section}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	var lastSource string
	for _, k := range order {
		if k.source != lastSource {
			fmt.Println(k.source)
			lastSource = k.source
		}
		fmt.Printf("  [%s]  %d pattern(s)\n", k.section, counts[k])
	}

	// Unsupported patterns are reported the same way a scan would.
	_, skipped, err := ahocorasick.NewSet(pats, flagSensitive)
	if err != nil {
		return err
	}
	for _, p := range skipped {
		diag.Warnf("pattern %q in %s uses an unsupported prefix", p.Raw, p.Source)
	}
	return nil
}
