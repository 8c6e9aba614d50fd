//go:build !weave

package weave

// Enabled reports which backend this binary was compiled against. It is
// false in default builds and true under -tags=weave.
const Enabled = false

// Model runs body exactly once, synchronously. Under -tags=weave the same
// call hands body to the exploration backend instead, which re-executes it
// under enumerated schedules and panics with a report if any run violates
// a checked property.
func Model(body func()) {
	body()
}
