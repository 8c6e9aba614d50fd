//go:build weave

package weave

import "github.com/kolkov/weave/internal/explore"

// Enabled reports which backend this binary was compiled against. It is
// false in default builds and true under -tags=weave.
const Enabled = true

// Model hands body to the exploration backend, which re-executes it under
// enumerated schedules until a violation is found, the schedule space is
// exhausted, or the iteration budget runs out. A violation fails the
// calling test by panicking with the backend's report.
//
// Exploration bounds come from the WEAVE_* environment variables; the
// weave CLI sets them from its flags and config file.
func Model(body func()) {
	res := explore.Explore(body, explore.OptionsFromEnv())
	if res.Violation != nil {
		panic("\n" + res.Violation.Report())
	}
}
