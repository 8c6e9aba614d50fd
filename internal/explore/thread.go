package explore

// Handle is a joinable reference to a spawned logical thread.
type Handle struct {
	r *run
	t *thread
}

// Spawn starts fn as a new logical thread of the current model run and
// returns a handle to join it. The spawn itself is a scheduling point, so
// the search explores both "child first" and "parent first" orders.
func Spawn(fn func()) *Handle {
	r, t := mustActive("thread.Spawn")
	child := r.newThread(t)
	r.start(child, fn)
	h := &Handle{r: r, t: child}
	r.schedulePoint(t)
	return h
}

// Join blocks the calling thread until the spawned thread has finished,
// establishing a happens-before edge from everything the child did.
func (h *Handle) Join() {
	r, t := mustActive("Thread.Join")
	if h.r != r {
		panic("weave: Join on a handle from a different model run")
	}
	if h.t.state != stateFinished {
		t.state = stateBlocked
		t.waitingOn = h.t
	}
	r.schedulePoint(t)
	t.clock.Join(h.t.clock)
	t.clock.Tick(t.id)
}

// SpinHint marks the calling thread as spinning and yields. The scheduler
// will not pick it again until another thread has run, so spin-wait loops
// make progress under every explored schedule.
func SpinHint() {
	r, t := mustActive("hint.Spin")
	t.yielded = true
	r.schedulePoint(t)
}
