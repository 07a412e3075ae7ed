// Package config loads optional per-project configuration from
// .megagrep.yaml at the scan root. Flags always win over config values;
// config fills in what the command line leaves unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up at the scan root.
const FileName = ".megagrep.yaml"

// Config mirrors the YAML file.
type Config struct {
	// Dictionaries are paths to dictionary files loaded by default.
	Dictionaries []string `yaml:"dictionaries"`

	// Lists restricts scanning to these dictionary sections.
	Lists []string `yaml:"lists"`

	// Include and Exclude are base-name globs; exclude wins.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Sensitive enables case-sensitive matching.
	Sensitive bool `yaml:"sensitive"`

	// Workers is the scan worker count (0 = one per CPU).
	Workers int `yaml:"workers"`

	// CommentTag is an extra one-line comment opener, e.g. "--" for SQL.
	CommentTag string `yaml:"comment_tag"`

	// Top is the number of entries per ranking report.
	Top int `yaml:"top"`
}

// Load reads the config file under root. A missing file yields a zero
// Config and no error; a malformed file is an error the caller may downgrade
// to a warning.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return &cfg, nil
}
