// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Kernels treat a shape mismatch as a no-op precondition violation, so the
//    benchmark runner calls these validators BEFORE invoking any kernel.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → SameSize).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and not destroyed.
// Returns wrapped ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil || m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize is the composite NotNil(each) → equal Size() check used
// before every multiplication (A, B, C) and every Compare (ref, cand).
// Complexity: O(k) for k matrices.
func ValidateSameSize(ms ...*Dense) error {
	if len(ms) == 0 {
		return nil
	}
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateSameSize", err)
		}
	}
	for _, m := range ms[1:] {
		if m.n != ms[0].n {
			return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
		}
	}

	return nil
}

// SameSize reports whether all matrices are non-nil and share one size.
// Kernels use it as their silent precondition guard.
func SameSize(ms ...*Dense) bool {
	for _, m := range ms {
		if m == nil || m.data == nil || m.n != ms[0].n {
			return false
		}
	}

	return true
}
