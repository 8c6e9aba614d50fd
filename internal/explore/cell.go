package explore

import (
	"fmt"

	"github.com/kolkov/weave/internal/vclock"
)

// Cell is the exploration backend's shared mutable cell. It owns exactly
// one value and grants raw access through closure-scoped windows; the
// window's extent is what delimits the access for conflict detection.
//
// Checks follow the FastTrack read/write rules at window entry:
//
//   - a read must happen after the last write
//   - a write must happen after the last write and after every read
//     recorded since that write
//
// On top of that, a write window may not overlap any other window, and a
// read window may not overlap a write window. Overlap only arises when a
// closure itself reaches a scheduling point, but escaping a window pointer
// into code that does is exactly the misuse this catches.
type Cell[T any] struct {
	v T

	write   vclock.Epoch // entry of the last write window
	reads   vclock.Clock // read frontier since the last write
	readers int
	writer  int // active writer's id+1, 0 when none
}

// NewCell wraps v. Construction counts as the initial write, performed by
// the calling thread. Must be called inside a model run.
func NewCell[T any](v T) *Cell[T] {
	_, t := mustActive("cell.New")
	c := &Cell[T]{v: v}
	c.write = vclock.NewEpoch(t.id, t.clock.At(t.id))
	return c
}

// With invokes f with a read-only view of the value, scoped to the call.
// The pointer must not be written through or retained.
func (c *Cell[T]) With(f func(*T)) {
	r, t := mustActive("Cell.With")
	r.schedulePoint(t)
	c.beginRead(t)
	defer c.endRead()
	f(&c.v)
}

// WithMut invokes f with a mutable view of the value, scoped to the call.
func (c *Cell[T]) WithMut(f func(*T)) {
	r, t := mustActive("Cell.WithMut")
	r.schedulePoint(t)
	c.beginWrite(t)
	defer c.endWrite()
	f(&c.v)
}

func (c *Cell[T]) beginRead(t *thread) {
	if c.writer != 0 {
		panic(&Violation{
			Kind:    KindOverlap,
			Message: fmt.Sprintf("T%d entered a read window while T%d holds a write window", t.id, c.writer-1),
		})
	}
	if !c.write.HappensBefore(t.clock) {
		panic(&Violation{
			Kind:    KindDataRace,
			Message: fmt.Sprintf("read by T%d is unsynchronized with write %v", t.id, c.write),
		})
	}
	t.clock.Tick(t.id)
	c.reads.Set(t.id, t.clock.At(t.id))
	c.readers++
}

func (c *Cell[T]) endRead() {
	c.readers--
}

func (c *Cell[T]) beginWrite(t *thread) {
	if c.writer != 0 || c.readers > 0 {
		panic(&Violation{
			Kind:    KindOverlap,
			Message: fmt.Sprintf("T%d entered a write window while other windows are open", t.id),
		})
	}
	if !c.write.HappensBefore(t.clock) {
		panic(&Violation{
			Kind:    KindDataRace,
			Message: fmt.Sprintf("write by T%d is unsynchronized with write %v", t.id, c.write),
		})
	}
	if !c.reads.HappensBefore(t.clock) {
		panic(&Violation{
			Kind:    KindDataRace,
			Message: fmt.Sprintf("write by T%d is unsynchronized with reads %v", t.id, c.reads),
		})
	}
	t.clock.Tick(t.id)
	c.write = vclock.NewEpoch(t.id, t.clock.At(t.id))
	c.reads.Reset()
	c.writer = t.id + 1
}

func (c *Cell[T]) endWrite() {
	c.writer = 0
}
