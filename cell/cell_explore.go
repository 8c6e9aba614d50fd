//go:build weave

package cell

import "github.com/kolkov/weave/internal/explore"

// Cell is the exploration backend's native cell; every window entry is
// checked against the access history of the explored schedule.
type Cell[T any] = explore.Cell[T]

// New wraps v, taking ownership of it. Must be called inside Model.
func New[T any](v T) *Cell[T] {
	return explore.NewCell(v)
}
