//go:build !weave

package atomic

import stdatomic "sync/atomic"

type (
	// Bool is sync/atomic.Bool.
	Bool = stdatomic.Bool

	// Int32 is sync/atomic.Int32.
	Int32 = stdatomic.Int32

	// Int64 is sync/atomic.Int64.
	Int64 = stdatomic.Int64

	// Uint32 is sync/atomic.Uint32.
	Uint32 = stdatomic.Uint32

	// Uint64 is sync/atomic.Uint64.
	Uint64 = stdatomic.Uint64

	// Uintptr is sync/atomic.Uintptr.
	Uintptr = stdatomic.Uintptr

	// Pointer is sync/atomic.Pointer.
	Pointer[T any] = stdatomic.Pointer[T]
)
