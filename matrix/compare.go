// SPDX-License-Identifier: MIT

package matrix

import "math"

// Compare is the correctness validator: it computes the maximum absolute
// elementwise difference between reference and candidate and passes when that
// maximum is ≤ epsilon (WithEpsilon, default DefaultEpsilon).
//
// Implementation:
//   - Stage 1: ValidateSameSize(reference, candidate).
//   - Stage 2: single flat walk over both buffers tracking max |a−b|.
//   - Stage 3: Pass = MaxDiff ≤ eps.
//
// Behavior highlights:
//   - A NaN difference poisons the result: MaxDiff becomes +Inf and Pass false.
//   - A failed verdict is a normal return value, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (caller defects; no Outcome is produced).
//
// Complexity:
//   - Time O(n²), Space O(1).
func Compare(reference, candidate *Dense, opts ...Option) (Outcome, error) {
	if err := ValidateSameSize(reference, candidate); err != nil {
		return Outcome{}, matrixErrorf("Compare", err)
	}
	o := gatherOptions(opts...)

	var maxDiff float64
	ref, cand := reference.data, candidate.data
	for idx := range ref {
		diff := math.Abs(ref[idx] - cand[idx])
		if math.IsNaN(diff) {
			maxDiff = math.Inf(1)
			break
		}
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	return Outcome{Pass: maxDiff <= o.eps, MaxDiff: maxDiff}, nil
}

// Equal is a convenience predicate over Compare. Size mismatches and nil
// operands report false.
func Equal(reference, candidate *Dense, opts ...Option) bool {
	out, err := Compare(reference, candidate, opts...)
	return err == nil && out.Pass
}
