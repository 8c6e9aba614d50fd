//go:build weave

package hint

import "github.com/kolkov/weave/internal/explore"

// Spin signals that the caller is in a spin-wait loop. The exploration
// scheduler deprioritizes the calling thread until another thread has run,
// so spin loops terminate under every explored schedule.
func Spin() {
	explore.SpinHint()
}
