// Package cli — solver configuration.
package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lkh/lk"
)

// Config mirrors the solve command's flags; the same fields load from a
// TOML file via --config.
type Config struct {
	Trials    int     `toml:"trials"`
	Neighbors int     `toml:"neighbors"`
	Strategy  string  `toml:"strategy"`
	Seed      int64   `toml:"seed"`
	Optimum   int64   `toml:"optimum"`
	Error     float64 `toml:"error"`
	Verbose   bool    `toml:"verbose"`
}

// defaultConfig returns the built-in solve defaults.
func defaultConfig() Config {
	return Config{
		Trials:    10,
		Neighbors: 5,
		Strategy:  "alpha",
	}
}

// mergeConfig resolves the effective configuration: built-in defaults,
// then the TOML file (if any), then every flag the user set explicitly.
func mergeConfig(path string, flags Config, cmd *cobra.Command) (Config, error) {
	if path == "" {
		return flags, nil
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	// Explicit flags win over the file.
	fs := cmd.Flags()
	if fs.Changed("trials") {
		cfg.Trials = flags.Trials
	}
	if fs.Changed("neighbors") {
		cfg.Neighbors = flags.Neighbors
	}
	if fs.Changed("strategy") {
		cfg.Strategy = flags.Strategy
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if fs.Changed("optimum") {
		cfg.Optimum = flags.Optimum
	}
	if fs.Changed("error") {
		cfg.Error = flags.Error
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}

	return cfg, nil
}

// ParseStrategy maps a strategy name to its lk constant.
func ParseStrategy(name string) (lk.CandidateStrategy, error) {
	switch name {
	case "all":
		return lk.AllNeighbors, nil
	case "nearest":
		return lk.NearestNeighbors, nil
	case "alpha":
		return lk.AlphaNearestNeighbors, nil
	case "alpha-opt":
		return lk.OptimizedAlphaNearestNeighbors, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want all|nearest|alpha|alpha-opt)", name)
	}
}
