//go:build weave

package atomic

import "github.com/kolkov/weave/internal/explore"

type (
	// Bool is the exploration backend's atomic boolean.
	Bool = explore.Bool

	// Int32 is the exploration backend's atomic int32.
	Int32 = explore.Int32

	// Int64 is the exploration backend's atomic int64.
	Int64 = explore.Int64

	// Uint32 is the exploration backend's atomic uint32.
	Uint32 = explore.Uint32

	// Uint64 is the exploration backend's atomic uint64.
	Uint64 = explore.Uint64

	// Uintptr is the exploration backend's atomic uintptr.
	Uintptr = explore.Uintptr

	// Pointer is the exploration backend's atomic pointer.
	Pointer[T any] = explore.Pointer[T]
)
