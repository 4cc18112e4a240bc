// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

// TestValidateSameSize covers nil inputs, destroyed inputs, matching and
// mismatched sizes.
func TestValidateSameSize(t *testing.T) {
	t.Parallel()

	square := func(n int) *matrix.Dense {
		m, err := matrix.NewSquare(n)
		require.NoError(t, err)
		return m
	}
	destroyed := square(2)
	destroyed.Destroy()

	tests := []struct {
		name    string
		ms      []*matrix.Dense
		wantErr error
	}{
		{"no operands", nil, nil},
		{"single", []*matrix.Dense{square(3)}, nil},
		{"both nil", []*matrix.Dense{nil, nil}, matrix.ErrNilMatrix},
		{"first nil", []*matrix.Dense{nil, square(2)}, matrix.ErrNilMatrix},
		{"third nil", []*matrix.Dense{square(2), square(2), nil}, matrix.ErrNilMatrix},
		{"destroyed", []*matrix.Dense{square(2), destroyed}, matrix.ErrNilMatrix},
		{"equal 4x4 triple", []*matrix.Dense{square(4), square(4), square(4)}, nil},
		{"size mismatch", []*matrix.Dense{square(4), square(5)}, matrix.ErrDimensionMismatch},
		{"output mismatch", []*matrix.Dense{square(4), square(4), square(3)}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameSize(tc.ms...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.True(t, matrix.SameSize(tc.ms...))
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
			require.False(t, matrix.SameSize(tc.ms...))
		})
	}
}

// TestValidateNotNil checks the single-operand guard.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewSquare(1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}
