//go:build !weave

package hint

import "runtime"

// Spin signals that the caller is in a spin-wait loop. The host runtime's
// only exported backoff is yielding the processor, so that is what a
// default build does.
func Spin() {
	runtime.Gosched()
}
