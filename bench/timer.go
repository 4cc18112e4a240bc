// SPDX-License-Identifier: MIT

package bench

import "time"

// Timer measures the wall-clock duration of one call.
type Timer func(fn func()) time.Duration

// Measure runs fn once and returns its elapsed wall-clock time. time.Now
// carries a monotonic reading, so the result is immune to clock steps.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Speedup returns reference/candidate, or 0 when candidate is not positive.
func Speedup(reference, candidate time.Duration) float64 {
	if candidate <= 0 {
		return 0
	}
	return reference.Seconds() / candidate.Seconds()
}
