//go:build !weave

package cell

// Cell owns a single value of type T and grants raw access to it through
// closure-scoped windows. This is the production adapter: it adds no
// synchronization, never blocks, and compiles down to a direct pointer
// hand-off, while presenting the same windowed shape the exploration
// backend's native cell checks.
type Cell[T any] struct {
	v T
}

// New wraps v, taking ownership of it. T needs no zero value and no way
// to copy it beyond this single move.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// With invokes f with a read-only view of the value, scoped to the call.
// The pointer must not be written through or retained.
func (c *Cell[T]) With(f func(*T)) {
	f(&c.v)
}

// WithMut invokes f with a mutable view of the value, scoped to the call.
// The pointer must not be retained.
func (c *Cell[T]) WithMut(f func(*T)) {
	f(&c.v)
}
