// Package weave provides one source-level API for building and testing
// concurrent data structures against two interchangeable backends,
// selected at build time by the "weave" build tag.
//
// In a default build every name resolves to the host runtime: goroutines,
// sync/atomic, and a zero-cost shared cell. With -tags=weave the same
// names resolve to a deterministic exploration backend that re-executes a
// test body under enumerated thread interleavings and reports data races,
// deadlocks, leaked threads, and panics together with the schedule that
// produced them.
//
// Test code imports only the facade packages:
//
//	import (
//	    "github.com/kolkov/weave"
//	    "github.com/kolkov/weave/atomic"
//	    "github.com/kolkov/weave/cell"
//	    "github.com/kolkov/weave/hint"
//	    "github.com/kolkov/weave/thread"
//	)
//
// and wraps each scenario in Model:
//
//	func TestCounter(t *testing.T) {
//	    weave.Model(func() {
//	        lock := NewSpinLock(0)
//	        h := thread.Spawn(func() { lock.With(func(n *int) { *n++ }) })
//	        lock.With(func(n *int) { *n++ })
//	        h.Join()
//	    })
//	}
//
// Run the test twice:
//
//	go test ./...              # production backend, body runs once
//	go test -tags=weave ./...  # exploration backend, schedules enumerated
//
// or use the weave CLI, which wires exploration options through the
// environment:
//
//	weave test ./...
//
// Bodies must be safe to re-execute: the exploration backend runs them
// once per explored schedule, and every run must build its shared state
// fresh inside the closure.
package weave
