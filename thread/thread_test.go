//go:build !weave

package thread

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnJoin(t *testing.T) {
	done := false
	h := Spawn(func() { done = true })
	h.Join()
	require.True(t, done, "Join must order the spawned work before it returns")
}

func TestJoinIsIdempotent(t *testing.T) {
	h := Spawn(func() {})
	h.Join()
	h.Join()
}

func TestManyThreads(t *testing.T) {
	const n = 64
	results := make([]int, n)

	handles := make([]*Thread, n)
	for i := 0; i < n; i++ {
		i := i
		handles[i] = Spawn(func() { results[i] = i + 1 })
	}
	for _, h := range handles {
		h.Join()
	}

	for i, v := range results {
		require.Equal(t, i+1, v)
	}
}
