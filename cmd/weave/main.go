// Package main implements the weave CLI tool.
//
// The weave tool runs test scenarios written against the weave facade
// under the exploration backend. It is a thin wrapper over the standard
// Go toolchain: `weave test` compiles the tests with the weave build tag
// and wires the exploration bounds through the environment.
//
// Usage:
//
//	weave test ./...            # explore all test scenarios
//	weave test -iters=50000 .   # raise the iteration budget
//	weave test -strategy=random -seed=7 ./internal/...
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "test":
		testCommand(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("weave version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`weave - deterministic concurrency exploration for Go tests

USAGE:
    weave <command> [arguments]

COMMANDS:
    test       Run go test with the exploration backend
    version    Show version information
    help       Show this help message

TEST FLAGS:
    -iters N      iteration budget per Model call
    -steps N      scheduling-point budget per run
    -strategy S   schedule search: dfs (exhaustive) or random
    -seed N       seed for the random strategy
    -config PATH  explicit .weave.toml location
    -v            verbose progress output (also passed to go test)

    Unrecognized flags are forwarded to go test unchanged.

EXAMPLES:
    # Explore every scenario in the module
    weave test ./...

    # Narrow to one test, with a larger budget
    weave test -run=TestSpinLock -iters=100000 ./...

    # Heuristic search with a fixed seed
    weave test -strategy=random -seed=42 ./...

ABOUT:
    Test code written against the weave facade compiles against two
    backends: the host runtime (default) and a deterministic exploration
    scheduler (-tags=weave). weave test selects the exploration backend
    and configures its bounds from flags and .weave.toml, so interleaving
    bugs reproduce deterministically instead of probabilistically.
`)
}
