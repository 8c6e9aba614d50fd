package explore

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/kolkov/weave/internal/vclock"
)

// threadState tracks where a logical thread is in its lifecycle.
type threadState uint8

const (
	stateRunnable threadState = iota
	stateBlocked
	stateFinished
)

// thread is one logical thread of a model run. It is backed by a real
// goroutine, but the goroutine only executes between a send on resume and
// the next scheduling point, so at most one thread runs at any instant.
type thread struct {
	id     int
	clock  vclock.Clock
	resume chan struct{}
	state  threadState

	// yielded marks a thread that called the spin hint; the scheduler
	// deprioritizes it until another thread has run, which is what lets
	// spin loops terminate under exhaustive search.
	yielded bool

	// waitingOn is the thread this one is joining, nil otherwise.
	waitingOn *thread
}

// threadAbort unwinds a parked thread when the run is being torn down.
// It is recovered silently by the thread wrapper.
type threadAbort struct{}

// run holds the state of a single execution of the test body.
type run struct {
	opts    Options
	sched   *schedule
	threads []*thread
	active  *thread
	events  chan struct{}
	steps   int
	trace   []int

	violation *Violation
	aborting  bool
}

// Exactly one exploration executes at a time; cur is the run whose active
// thread is currently scheduled. All accesses are ordered by the
// resume/events channel handshake.
var (
	modelMu sync.Mutex
	cur     *run
)

// mustActive returns the current run and its scheduled thread. Backend
// primitives call this; using them outside a model run is a caller bug.
func mustActive(op string) (*run, *thread) {
	r := cur
	if r == nil || r.active == nil {
		panic("weave: " + op + " called outside a model run")
	}
	return r, r.active
}

func newRun(opts Options, sched *schedule) *run {
	return &run{opts: opts, sched: sched, events: make(chan struct{})}
}

// newThread registers a logical thread. A spawned thread inherits its
// parent's clock (the spawn edge), and both sides tick so later events on
// either are ordered after the spawn.
func (r *run) newThread(parent *thread) *thread {
	t := &thread{id: len(r.threads), resume: make(chan struct{})}
	if parent != nil {
		t.clock = parent.clock.Clone()
	} else {
		t.clock = vclock.New(1)
	}
	t.clock.Tick(t.id)
	if parent != nil {
		parent.clock.Tick(parent.id)
	}
	r.threads = append(r.threads, t)
	return t
}

// start launches the goroutine backing t. It parks until first scheduled,
// and reports exactly one event when the thread finishes, whatever the
// cause: normal return, a violation, or teardown.
func (r *run) start(t *thread, fn func()) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				if _, ok := p.(threadAbort); !ok {
					r.noteViolation(t, p)
				}
			}
			t.state = stateFinished
			r.wakeJoiners(t)
			r.events <- struct{}{}
		}()
		<-t.resume
		if r.aborting {
			return
		}
		fn()
	}()
}

// schedulePoint parks the calling thread and hands control back to the
// scheduler. Every backend primitive passes through here before touching
// shared state, which is what makes each access a point the search can
// interleave around.
func (r *run) schedulePoint(t *thread) {
	r.steps++
	if r.steps > r.opts.MaxSteps {
		panic(&Violation{
			Kind: KindStepBound,
			Message: fmt.Sprintf("run exceeded %d scheduling points; the body may not terminate under this schedule",
				r.opts.MaxSteps),
		})
	}
	r.events <- struct{}{}
	<-t.resume
	if r.aborting {
		panic(threadAbort{})
	}
}

// execute drives one run of the body to completion or to a violation.
func (r *run) execute(body func()) {
	main := r.newThread(nil)
	r.start(main, body)

	for {
		cands := r.runnable()
		if len(cands) == 0 {
			if r.violation == nil && !r.allFinished() {
				r.violation = r.deadlockViolation()
			}
			break
		}

		t := cands[r.sched.next(len(cands))]
		r.trace = append(r.trace, t.id)

		// A spin-hinted thread becomes eligible again once any other
		// thread has taken a step.
		for _, u := range r.threads {
			if u != t {
				u.yielded = false
			}
		}

		r.active = t
		t.resume <- struct{}{}
		<-r.events
		r.active = nil

		if r.violation != nil {
			break
		}
		if main.state == stateFinished {
			if leaked := r.live(); len(leaked) > 0 {
				r.violation = r.leakViolation(leaked)
			}
			break
		}
	}

	r.teardown()
}

// runnable returns the threads the scheduler may pick, preferring threads
// that have not spin-hinted since another thread last ran.
func (r *run) runnable() []*thread {
	var avail, spinning []*thread
	for _, t := range r.threads {
		if t.state != stateRunnable {
			continue
		}
		if t.yielded {
			spinning = append(spinning, t)
		} else {
			avail = append(avail, t)
		}
	}
	if len(avail) == 0 {
		for _, t := range spinning {
			t.yielded = false
		}
		return spinning
	}
	return avail
}

func (r *run) allFinished() bool {
	return len(r.live()) == 0
}

// live returns the threads that have not finished.
func (r *run) live() []*thread {
	var out []*thread
	for _, t := range r.threads {
		if t.state != stateFinished {
			out = append(out, t)
		}
	}
	return out
}

// wakeJoiners unblocks every thread joining t. Called by t's wrapper
// before it reports its final event, so the scheduler observes the
// transition atomically with the finish.
func (r *run) wakeJoiners(t *thread) {
	for _, u := range r.threads {
		if u.state == stateBlocked && u.waitingOn == t {
			u.state = stateRunnable
			u.waitingOn = nil
		}
	}
}

// noteViolation records why a thread unwound. The first violation of a run
// wins; the rest are teardown fallout.
func (r *run) noteViolation(t *thread, p any) {
	if v, ok := p.(*Violation); ok {
		v.ThreadID = t.id
		if r.violation == nil {
			r.violation = v
		}
		return
	}
	if r.violation == nil {
		r.violation = &Violation{
			Kind:     KindPanic,
			ThreadID: t.id,
			Message:  fmt.Sprintf("panic: %v", p),
			Stack:    debug.Stack(),
		}
	}
}

func (r *run) deadlockViolation() *Violation {
	msg := "deadlock: no thread is runnable"
	for _, t := range r.live() {
		if t.waitingOn != nil {
			msg += fmt.Sprintf("; T%d joining T%d", t.id, t.waitingOn.id)
		}
	}
	return &Violation{Kind: KindDeadlock, Message: msg}
}

func (r *run) leakViolation(leaked []*thread) *Violation {
	msg := "body returned with live threads:"
	for _, t := range leaked {
		msg += fmt.Sprintf(" T%d", t.id)
	}
	return &Violation{Kind: KindThreadLeak, Message: msg}
}

// teardown wakes every parked thread so its goroutine unwinds. Each one
// reports exactly one final event; draining them guarantees no goroutine
// survives into the next iteration.
func (r *run) teardown() {
	r.aborting = true
	for _, t := range r.threads {
		if t.state != stateFinished {
			t.resume <- struct{}{}
			<-r.events
		}
	}
}
