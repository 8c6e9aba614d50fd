package vclock

import "fmt"

// Epoch is a packed logical timestamp recording a single event: which
// thread performed it and at what clock value. Layout: [TID:16][Clock:48].
//
// An epoch is how a cell remembers its last write without holding a full
// clock; the happens-before check against a thread's clock is O(1).
type Epoch uint64

const (
	epochClockBits = 48
	epochClockMask = (1 << epochClockBits) - 1
)

// NewEpoch packs a thread ID and clock value. Clock values beyond 48 bits
// are truncated; a model run never gets near that bound.
func NewEpoch(tid int, clock uint64) Epoch {
	return Epoch(uint64(tid)<<epochClockBits | (clock & epochClockMask))
}

// Decode extracts the thread ID and clock value.
func (e Epoch) Decode() (tid int, clock uint64) {
	return int(e >> epochClockBits), uint64(e) & epochClockMask
}

// HappensBefore reports whether the event recorded by e is ordered before
// the frontier of c: e's clock must be covered by c's component for e's
// thread.
func (e Epoch) HappensBefore(c Clock) bool {
	tid, clock := e.Decode()
	return clock <= c.At(tid)
}

func (e Epoch) String() string {
	tid, clock := e.Decode()
	return fmt.Sprintf("T%d@%d", tid, clock)
}
