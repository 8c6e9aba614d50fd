// test.go implements the 'weave test' command.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kolkov/weave/internal/explore"
)

// testConfig holds the parsed arguments of 'weave test'.
type testConfig struct {
	// Package patterns to test (defaults to ./...).
	packages []string

	// Flags forwarded to go test unchanged.
	goTestArgs []string

	// Exploration bounds set on the command line; zero fields were not
	// given and fall through to .weave.toml and the defaults.
	explore ExploreConfig

	// Explicit config file path (-config).
	configPath string

	verbose bool
	workDir string
}

// testCommand runs 'go test -tags=weave' with the exploration environment
// assembled from flags, .weave.toml, and defaults, and forwards the child
// exit code.
func testCommand(args []string) {
	cfg, err := parseTestArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !cfg.verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	settings := defaultExploreConfig()

	modRoot, err := findModuleRoot(cfg.workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "weave test must run inside a Go module")
		os.Exit(1)
	}
	modPath, hasFacade, err := moduleInfo(modRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !hasFacade {
		log.Warn().Str("module", modPath).Msg("module does not require " + facadeModule + "; nothing may be explored")
	}

	configPath := cfg.configPath
	if configPath == "" {
		configPath, _ = findConfig(cfg.workDir, modRoot)
	}
	if configPath != "" {
		fileCfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := settings.merge(fileCfg.Explore); err != nil {
			fmt.Fprintf(os.Stderr, "Error in %s: %v\n", configPath, err)
			os.Exit(1)
		}
		log.Info().Str("config", configPath).Msg("loaded exploration config")
	}
	if err := settings.merge(cfg.explore); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("module", modPath).
		Str("strategy", settings.Strategy).
		Int("iterations", settings.Iterations).
		Int("steps", settings.Steps).
		Int64("seed", settings.Seed).
		Msg("exploring")

	os.Exit(runGoTest(cfg, settings))
}

// parseTestArgs splits weave's own flags from go test flags and package
// patterns. Anything unrecognized that starts with '-' is forwarded.
func parseTestArgs(args []string) (*testConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg := &testConfig{workDir: cwd}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case matchFlag(arg, "-iters"):
			v, ni, err := flagValue(args, i, "-iters")
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("-iters: want a positive integer, got %q", v)
			}
			cfg.explore.Iterations = n
			i = ni
		case matchFlag(arg, "-steps"):
			v, ni, err := flagValue(args, i, "-steps")
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("-steps: want a positive integer, got %q", v)
			}
			cfg.explore.Steps = n
			i = ni
		case matchFlag(arg, "-strategy"):
			v, ni, err := flagValue(args, i, "-strategy")
			if err != nil {
				return nil, err
			}
			cfg.explore.Strategy = v
			i = ni
		case matchFlag(arg, "-seed"):
			v, ni, err := flagValue(args, i, "-seed")
			if err != nil {
				return nil, err
			}
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n == 0 {
				return nil, fmt.Errorf("-seed: want a non-zero integer, got %q", v)
			}
			cfg.explore.Seed = n
			i = ni
		case matchFlag(arg, "-config"):
			v, ni, err := flagValue(args, i, "-config")
			if err != nil {
				return nil, err
			}
			cfg.configPath = v
			i = ni
		case arg == "-v":
			cfg.verbose = true
			cfg.goTestArgs = append(cfg.goTestArgs, arg)
		case strings.HasPrefix(arg, "-"):
			cfg.goTestArgs = append(cfg.goTestArgs, arg)
		default:
			cfg.packages = append(cfg.packages, arg)
		}
	}

	if len(cfg.packages) == 0 {
		cfg.packages = []string{"./..."}
	}
	return cfg, nil
}

// matchFlag reports whether arg is name or name=value.
func matchFlag(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}

// flagValue extracts a flag's value from name=value or the next argument.
// Returns the value and the index of the last argument consumed.
func flagValue(args []string, i int, name string) (string, int, error) {
	if eq := strings.IndexByte(args[i], '='); eq >= 0 {
		return args[i][eq+1:], i, nil
	}
	if i+1 >= len(args) {
		return "", i, fmt.Errorf("flag %s requires a value", name)
	}
	return args[i+1], i + 1, nil
}

// exploreEnv renders the settings as WEAVE_* environment assignments.
func exploreEnv(s ExploreConfig) []string {
	return []string{
		fmt.Sprintf("%s=%d", explore.EnvMaxIterations, s.Iterations),
		fmt.Sprintf("%s=%d", explore.EnvMaxSteps, s.Steps),
		fmt.Sprintf("%s=%s", explore.EnvStrategy, s.Strategy),
		fmt.Sprintf("%s=%d", explore.EnvSeed, s.Seed),
	}
}

// runGoTest executes go test with the weave tag and returns its exit code.
func runGoTest(cfg *testConfig, settings ExploreConfig) int {
	goArgs := append([]string{"test", "-tags=weave"}, cfg.goTestArgs...)
	goArgs = append(goArgs, cfg.packages...)

	cmd := exec.Command("go", goArgs...)
	cmd.Dir = cfg.workDir
	cmd.Env = append(os.Environ(), exploreEnv(settings)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error running go test: %v\n", err)
		return 1
	}
	return 0
}
