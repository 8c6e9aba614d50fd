// Package vclock implements vector clocks and packed epochs for tracking
// happens-before relations between logical threads of a model run.
//
// A model run involves a handful of logical threads, so clocks are
// slice-backed and grow on demand. The two operations that matter:
//
//   - Join: synchronization (point-wise maximum) - applied on acquire edges
//   - HappensBefore: partial-order check - the core of conflict detection
package vclock

import (
	"fmt"
	"strings"
)

// Clock represents logical time across the threads of one model run.
// c[tid] is the clock value of thread tid; indexes past the end are zero.
type Clock []uint64

// New returns a clock covering n threads, all at logical time zero.
func New(n int) Clock {
	return make(Clock, n)
}

// Tick advances the component for thread tid, growing the clock if needed.
func (c *Clock) Tick(tid int) {
	c.grow(tid + 1)
	(*c)[tid]++
}

// At returns the component for thread tid (zero if never ticked).
func (c Clock) At(tid int) uint64 {
	if tid >= len(c) {
		return 0
	}
	return c[tid]
}

// Set assigns the component for thread tid, growing the clock if needed.
func (c *Clock) Set(tid int, v uint64) {
	c.grow(tid + 1)
	(*c)[tid] = v
}

// Join performs point-wise maximum: c = c ⊔ other.
// This is the synchronization rule: after Join, everything other has
// observed happens-before everything c does next.
func (c *Clock) Join(other Clock) {
	c.grow(len(other))
	for i, v := range other {
		if v > (*c)[i] {
			(*c)[i] = v
		}
	}
}

// HappensBefore reports whether c <= other point-wise, i.e. every event
// recorded in c is ordered before other's frontier.
func (c Clock) HappensBefore(other Clock) bool {
	for i, v := range c {
		if v == 0 {
			continue
		}
		if i >= len(other) || v > other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the clock.
func (c Clock) Clone() Clock {
	out := make(Clock, len(c))
	copy(out, c)
	return out
}

// Reset zeroes every component, keeping capacity.
func (c Clock) Reset() {
	for i := range c {
		c[i] = 0
	}
}

func (c *Clock) grow(n int) {
	for len(*c) < n {
		*c = append(*c, 0)
	}
}

// String renders the clock as {T0@3 T1@7 ...}, omitting zero components.
func (c Clock) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i, v := range c {
		if v == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "T%d@%d", i, v)
	}
	b.WriteByte('}')
	return b.String()
}
