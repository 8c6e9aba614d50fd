// Package cell provides a shared mutable cell with closure-scoped access.
//
// A Cell owns exactly one value. Callers never hold a reference to the
// value itself; they receive a raw pointer only for the extent of the
// closure passed to With or WithMut. That window is the entire contract:
// it is what the exploration backend uses to delimit accesses for
// conflict detection, and in default builds it is the convention that
// makes the same code sound. A pointer kept past the closure, or written
// through inside With, is undefined behavior under either backend.
//
// The cell grants access, never safety: any synchronization that makes
// concurrent windows correct (a lock, an atomic protocol) is the caller's
// responsibility.
package cell
