// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes unexported helpers to matrix_test only.
var (
	ExportedDeriveSeed = deriveSeed
	ExportedStripe     = stripe
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps      float64
	Min, Max float64
	Workers  int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Eps: o.eps, Min: o.min, Max: o.max, Workers: o.workers}
}
