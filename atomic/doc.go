// Package atomic is the facade over the active backend's atomic types.
//
// In default builds every type is an alias of its sync/atomic counterpart,
// so there is no wrapper and no overhead. Under -tags=weave the same names
// alias the exploration backend's types, whose operations are scheduling
// points with sequentially consistent happens-before semantics. That is
// the ordering sync/atomic guarantees, so switching backends never
// changes a program's intended ordering.
package atomic
