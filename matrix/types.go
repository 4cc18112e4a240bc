// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the validator and its callers.
package matrix

// Outcome is the verdict produced by Compare.
//
//   - Pass is true when MaxDiff ≤ epsilon.
//   - MaxDiff is the largest |reference[i,j] − candidate[i,j]| observed
//     (+Inf if any difference was NaN).
//
// Outcome is a plain value: callers record it, it is never fatal.
type Outcome struct {
	Pass    bool    // verdict within the configured epsilon
	MaxDiff float64 // maximum absolute elementwise difference
}
