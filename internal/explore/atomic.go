package explore

import "github.com/kolkov/weave/internal/vclock"

// Go atomics are sequentially consistent; for happens-before purposes
// every operation is a two-way synchronization with the variable: the
// thread observes everything published through the variable and publishes
// everything it has observed. Each operation is also a scheduling point.
//
// The values themselves are plain fields. Only one logical thread executes
// at a time and scheduling hand-offs are channel-ordered, so the backend
// needs no hardware atomicity of its own.
func syncSeqCst(varClock *vclock.Clock, op string) {
	r, t := mustActive(op)
	r.schedulePoint(t)
	t.clock.Join(*varClock)
	varClock.Join(t.clock)
	t.clock.Tick(t.id)
}

type integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~uintptr
}

// num carries the shared implementation of the integer atomic types. The
// zero value is valid, matching sync/atomic.
type num[T integer] struct {
	v     T
	clock vclock.Clock
}

func (a *num[T]) Load() T {
	syncSeqCst(&a.clock, "atomic Load")
	return a.v
}

func (a *num[T]) Store(v T) {
	syncSeqCst(&a.clock, "atomic Store")
	a.v = v
}

func (a *num[T]) Swap(new T) (old T) {
	syncSeqCst(&a.clock, "atomic Swap")
	old, a.v = a.v, new
	return old
}

func (a *num[T]) CompareAndSwap(old, new T) (swapped bool) {
	syncSeqCst(&a.clock, "atomic CompareAndSwap")
	if a.v != old {
		return false
	}
	a.v = new
	return true
}

func (a *num[T]) Add(delta T) (new T) {
	syncSeqCst(&a.clock, "atomic Add")
	a.v += delta
	return a.v
}

func (a *num[T]) And(mask T) (old T) {
	syncSeqCst(&a.clock, "atomic And")
	old = a.v
	a.v &= mask
	return old
}

func (a *num[T]) Or(mask T) (old T) {
	syncSeqCst(&a.clock, "atomic Or")
	old = a.v
	a.v |= mask
	return old
}

// Int32 is the exploration counterpart of sync/atomic.Int32.
type Int32 struct{ num[int32] }

// Int64 is the exploration counterpart of sync/atomic.Int64.
type Int64 struct{ num[int64] }

// Uint32 is the exploration counterpart of sync/atomic.Uint32.
type Uint32 struct{ num[uint32] }

// Uint64 is the exploration counterpart of sync/atomic.Uint64.
type Uint64 struct{ num[uint64] }

// Uintptr is the exploration counterpart of sync/atomic.Uintptr.
type Uintptr struct{ num[uintptr] }

// Bool is the exploration counterpart of sync/atomic.Bool.
type Bool struct {
	v     bool
	clock vclock.Clock
}

func (a *Bool) Load() bool {
	syncSeqCst(&a.clock, "atomic Load")
	return a.v
}

func (a *Bool) Store(v bool) {
	syncSeqCst(&a.clock, "atomic Store")
	a.v = v
}

func (a *Bool) Swap(new bool) (old bool) {
	syncSeqCst(&a.clock, "atomic Swap")
	old, a.v = a.v, new
	return old
}

func (a *Bool) CompareAndSwap(old, new bool) (swapped bool) {
	syncSeqCst(&a.clock, "atomic CompareAndSwap")
	if a.v != old {
		return false
	}
	a.v = new
	return true
}

// Pointer is the exploration counterpart of sync/atomic.Pointer.
type Pointer[T any] struct {
	v     *T
	clock vclock.Clock
}

func (a *Pointer[T]) Load() *T {
	syncSeqCst(&a.clock, "atomic Load")
	return a.v
}

func (a *Pointer[T]) Store(v *T) {
	syncSeqCst(&a.clock, "atomic Store")
	a.v = v
}

func (a *Pointer[T]) Swap(new *T) (old *T) {
	syncSeqCst(&a.clock, "atomic Swap")
	old, a.v = a.v, new
	return old
}

func (a *Pointer[T]) CompareAndSwap(old, new *T) (swapped bool) {
	syncSeqCst(&a.clock, "atomic CompareAndSwap")
	if a.v != old {
		return false
	}
	a.v = new
	return true
}
