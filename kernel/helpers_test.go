// SPDX-License-Identifier: MIT
package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

// operands returns A (seed) and B (seed+1) filled in [-10, 10] plus a zero C.
func operands(tb testing.TB, n int, seed int64) (a, b, c *matrix.Dense) {
	tb.Helper()
	var err error
	a, err = matrix.NewSquare(n)
	require.NoError(tb, err)
	b, err = matrix.NewSquare(n)
	require.NoError(tb, err)
	c, err = matrix.NewSquare(n)
	require.NoError(tb, err)
	a.FillRandom(seed, matrix.WithWorkers(4))
	b.FillRandom(seed+1, matrix.WithWorkers(4))
	return a, b, c
}

func newSquare(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	return m
}

// poison fills c with a non-zero sentinel so that a kernel forgetting to
// reset its output is caught.
func poison(c *matrix.Dense) {
	for i := range c.Raw() {
		c.Raw()[i] = 12345
	}
}

// requireClose asserts got == want within matrix.DefaultEpsilon.
func requireClose(tb testing.TB, want, got *matrix.Dense, label string) {
	tb.Helper()
	out, err := matrix.Compare(want, got)
	require.NoError(tb, err)
	require.Truef(tb, out.Pass, "%s: max diff %g", label, out.MaxDiff)
}
