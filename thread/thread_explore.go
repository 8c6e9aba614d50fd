//go:build weave

package thread

import "github.com/kolkov/weave/internal/explore"

// Thread is a joinable handle to a spawned logical thread.
type Thread = explore.Handle

// Spawn runs f as a new logical thread of the current model run.
func Spawn(f func()) *Thread {
	return explore.Spawn(f)
}
