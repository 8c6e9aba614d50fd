// config.go loads exploration defaults from .weave.toml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kolkov/weave/internal/explore"
)

const configFileName = ".weave.toml"

// Config is the on-disk shape of .weave.toml.
type Config struct {
	Explore ExploreConfig `toml:"explore"`
}

// ExploreConfig holds exploration bounds. Zero fields mean "not set".
type ExploreConfig struct {
	Iterations int    `toml:"iterations"`
	Steps      int    `toml:"steps"`
	Strategy   string `toml:"strategy"`
	Seed       int64  `toml:"seed"`
}

func defaultExploreConfig() ExploreConfig {
	return ExploreConfig{
		Iterations: explore.DefaultMaxIterations,
		Steps:      explore.DefaultMaxSteps,
		Strategy:   explore.StrategyDFS,
		Seed:       explore.DefaultSeed,
	}
}

// merge overlays the set fields of o onto e. Flag values go through the
// same path, so precedence is defaults < config file < flags.
func (e *ExploreConfig) merge(o ExploreConfig) error {
	if o.Iterations > 0 {
		e.Iterations = o.Iterations
	}
	if o.Steps > 0 {
		e.Steps = o.Steps
	}
	if o.Strategy != "" {
		if o.Strategy != explore.StrategyDFS && o.Strategy != explore.StrategyRandom {
			return fmt.Errorf("unknown strategy %q (want %q or %q)",
				o.Strategy, explore.StrategyDFS, explore.StrategyRandom)
		}
		e.Strategy = o.Strategy
	}
	if o.Seed != 0 {
		e.Seed = o.Seed
	}
	return nil
}

// loadConfig decodes the config file at path.
func loadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return c, nil
}

// findConfig returns the first .weave.toml found in dirs.
func findConfig(dirs ...string) (string, bool) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, configFileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
