package explore

import (
	"os"
	"strconv"
)

// Search strategies.
const (
	// StrategyDFS walks the schedule decision tree exhaustively.
	StrategyDFS = "dfs"

	// StrategyRandom draws schedules from a seeded generator. Useful when
	// the full tree is too large to exhaust.
	StrategyRandom = "random"
)

// Environment variables consumed by OptionsFromEnv. The weave CLI sets
// these from its flags and config file before invoking go test.
const (
	EnvMaxIterations = "WEAVE_MAX_ITERS"
	EnvMaxSteps      = "WEAVE_MAX_STEPS"
	EnvStrategy      = "WEAVE_STRATEGY"
	EnvSeed          = "WEAVE_SEED"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultMaxIterations = 10000
	DefaultMaxSteps      = 50000
	DefaultSeed          = 1
)

// Options bounds and parameterizes an exploration.
type Options struct {
	// MaxIterations caps the number of runs of the body per exploration.
	MaxIterations int

	// MaxSteps caps scheduling points within a single run; exceeding it is
	// reported as a violation, since a well-formed scenario finishes in a
	// bounded number of operations.
	MaxSteps int

	// Strategy is StrategyDFS or StrategyRandom.
	Strategy string

	// Seed drives StrategyRandom. Ignored by StrategyDFS.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Strategy != StrategyRandom {
		o.Strategy = StrategyDFS
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return o
}

// OptionsFromEnv builds Options from the WEAVE_* environment. Unset or
// malformed values fall back to defaults.
func OptionsFromEnv() Options {
	var o Options
	if n, err := strconv.Atoi(os.Getenv(EnvMaxIterations)); err == nil && n > 0 {
		o.MaxIterations = n
	}
	if n, err := strconv.Atoi(os.Getenv(EnvMaxSteps)); err == nil && n > 0 {
		o.MaxSteps = n
	}
	if s := os.Getenv(EnvStrategy); s == StrategyDFS || s == StrategyRandom {
		o.Strategy = s
	}
	if n, err := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64); err == nil && n != 0 {
		o.Seed = n
	}
	return o
}
