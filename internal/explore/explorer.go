package explore

import "math/rand"

// Result summarizes one exploration of a test body.
type Result struct {
	// Iterations is the number of runs executed.
	Iterations int

	// Exhausted reports whether the search visited every schedule in the
	// decision tree. False means the iteration budget ran out first.
	Exhausted bool

	// Violation is the first violation found, nil if none.
	Violation *Violation
}

// Explore repeatedly executes body under different schedules until a
// violation is found, the decision tree is exhausted, or the iteration
// budget runs out. Explorations are serialized: the scheduler state is
// global for the duration of one call.
func Explore(body func(), opts Options) Result {
	opts = opts.withDefaults()

	modelMu.Lock()
	defer modelMu.Unlock()

	sched := newSchedule(opts)
	var res Result
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		r := newRun(opts, sched)
		cur = r
		r.execute(body)
		cur = nil

		res.Iterations = iter
		if v := r.violation; v != nil {
			v.Iteration = iter
			v.Trace = r.trace
			res.Violation = v
			return res
		}
		if !sched.advance() {
			res.Exhausted = true
			return res
		}
	}
	return res
}

// decision is one node on the current schedule path: which of count
// runnable threads was chosen at that point.
type decision struct {
	chosen int
	count  int
}

// schedule enumerates scheduling decisions across runs.
//
// In exhaustive mode it walks the decision tree depth-first: each run
// replays the recorded path and takes the first alternative (index 0) past
// it; advance then bumps the deepest decision that still has an untried
// alternative and truncates everything below. In random mode it draws
// every decision from a seeded generator.
type schedule struct {
	random bool
	rng    *rand.Rand
	path   []decision
	depth  int
}

func newSchedule(opts Options) *schedule {
	if opts.Strategy == StrategyRandom {
		return &schedule{random: true, rng: rand.New(rand.NewSource(opts.Seed))}
	}
	return &schedule{}
}

// next picks among n candidates at the current decision point. Forced
// choices (n <= 1) are not recorded; they cannot branch.
func (s *schedule) next(n int) int {
	if n <= 1 {
		return 0
	}
	if s.random {
		return s.rng.Intn(n)
	}
	if s.depth < len(s.path) {
		d := &s.path[s.depth]
		d.count = n
		if d.chosen >= n {
			// Replay divergence: the body was not deterministic. Clamp
			// rather than crash; exploration stays bounded either way.
			d.chosen = n - 1
		}
		s.depth++
		return d.chosen
	}
	s.path = append(s.path, decision{chosen: 0, count: n})
	s.depth++
	return 0
}

// advance prepares the next run. It reports false when the decision tree
// is exhausted.
func (s *schedule) advance() bool {
	if s.random {
		return true
	}
	s.path = s.path[:s.depth]
	for len(s.path) > 0 {
		d := &s.path[len(s.path)-1]
		if d.chosen+1 < d.count {
			d.chosen++
			s.depth = 0
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	s.depth = 0
	return false
}
