// Package dicts embeds the default keyword dictionary. This is a standalone
// package with no imports to avoid circular dependencies.
package dicts

import "embed"

// DefaultName is the embedded default dictionary file.
const DefaultName = "megagrep.dict"

//go:embed megagrep.dict
var FS embed.FS
