//go:build !weave

package thread

// Thread is a joinable handle to a spawned goroutine.
type Thread struct {
	done chan struct{}
}

// Spawn runs f on a new goroutine and returns a handle to join it.
// A panic in f is not recovered; it crashes the program, which is how a
// failed assertion inside a scenario surfaces in a default build.
func Spawn(f func()) *Thread {
	t := &Thread{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		f()
	}()
	return t
}

// Join blocks until the spawned function has returned.
func (t *Thread) Join() {
	<-t.done
}
