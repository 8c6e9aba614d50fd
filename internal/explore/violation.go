package explore

import (
	"fmt"
	"strings"
)

// Kind classifies a violation found during exploration.
type Kind int

const (
	// KindDataRace is an unsynchronized pair of conflicting cell accesses.
	KindDataRace Kind = iota

	// KindOverlap is a write window overlapping another access window of
	// the same cell.
	KindOverlap

	// KindDeadlock means no thread was runnable while some were blocked.
	KindDeadlock

	// KindThreadLeak means the body returned while spawned threads were
	// still running.
	KindThreadLeak

	// KindStepBound means a run exceeded the per-run scheduling budget.
	KindStepBound

	// KindPanic is a panic raised by the body itself, e.g. a failed
	// assertion.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindDataRace:
		return "data race"
	case KindOverlap:
		return "overlapping access windows"
	case KindDeadlock:
		return "deadlock"
	case KindThreadLeak:
		return "thread leak"
	case KindStepBound:
		return "step bound exceeded"
	case KindPanic:
		return "panic in body"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Violation describes the first failure an exploration found, together
// with the schedule that produced it so the run can be reasoned about.
type Violation struct {
	Kind      Kind
	Message   string
	ThreadID  int
	Iteration int

	// Trace is the sequence of thread IDs the scheduler picked during the
	// failing run.
	Trace []int

	// Stack is the goroutine stack for KindPanic, nil otherwise.
	Stack []byte
}

func (v *Violation) Error() string {
	return fmt.Sprintf("weave: %s: %s", v.Kind, v.Message)
}

// Report renders the violation in full, including the failing schedule.
func (v *Violation) Report() string {
	var b strings.Builder
	b.WriteString("==================\n")
	b.WriteString("WEAVE: model violation\n")
	fmt.Fprintf(&b, "  kind:      %s\n", v.Kind)
	fmt.Fprintf(&b, "  thread:    T%d\n", v.ThreadID)
	fmt.Fprintf(&b, "  iteration: %d\n", v.Iteration)
	fmt.Fprintf(&b, "  detail:    %s\n", v.Message)
	if len(v.Trace) > 0 {
		b.WriteString("  schedule: ")
		for _, id := range v.Trace {
			fmt.Fprintf(&b, " T%d", id)
		}
		b.WriteByte('\n')
	}
	if len(v.Stack) > 0 {
		b.WriteString("  stack:\n")
		for _, line := range strings.Split(strings.TrimRight(string(v.Stack), "\n"), "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("==================")
	return b.String()
}
