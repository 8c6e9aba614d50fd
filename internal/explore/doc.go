// Package explore implements the exploration backend: a deterministic
// cooperative scheduler that re-executes a test body under enumerated
// thread interleavings and reports concurrency violations.
//
// Logical threads are goroutines gated by per-thread resume channels so
// that exactly one executes at a time. Every backend primitive (atomic
// operation, cell access window, spawn, join, spin hint) is a scheduling
// point: the running thread parks and the scheduler picks the next thread
// according to the current schedule.
//
// Schedules are enumerated either exhaustively (depth-first over the tree
// of scheduling decisions, replaying a decision prefix and diverging at
// the deepest unexplored branch) or heuristically (seeded pseudo-random
// selection). Both modes are bounded: MaxIterations caps the number of
// runs and MaxSteps caps scheduling points within one run.
//
// Conflict detection follows the FastTrack discipline: each thread carries
// a vector clock, spawn/join and atomic operations establish
// happens-before edges, and each cell access window is checked against the
// cell's last write epoch and read frontier at entry.
package explore
