// Package thread provides spawn/join over the active backend's threads:
// plain goroutines with a join handle in default builds, the exploration
// backend's logical threads under -tags=weave.
package thread
