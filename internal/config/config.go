// Package config loads the resource limits and default search strategy
// the CLI enforces around the core (spec.md §7 CapacityError, §4.7
// Strategy), following the YAML-config idiom of the example pack.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits holds the ambient limits a CLI invocation enforces before
// handing a KB to the core.
type Limits struct {
	// MaxInterpretables caps the number of ground atoms a KB may produce
	// (world count 2^MaxInterpretables); 0 disables the check.
	MaxInterpretables int `yaml:"max_interpretables"`

	// DefaultStrategy names the search strategy used when a CLI command
	// is not given --strategy explicitly: "brute", "search-all", or
	// "search-min".
	DefaultStrategy string `yaml:"default_strategy"`
}

// Default returns the limits used when no --config file is given.
func Default() *Limits {
	return &Limits{
		MaxInterpretables: 24,
		DefaultStrategy:   "search-min",
	}
}

// Load reads a YAML limits file. A missing file is not an error: Load
// returns Default() unchanged.
func Load(path string) (*Limits, error) {
	l := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return l, nil
}

func (l *Limits) Strategy() string {
	switch l.DefaultStrategy {
	case "brute", "search-all", "search-min":
		return l.DefaultStrategy
	default:
		return "search-min"
	}
}
