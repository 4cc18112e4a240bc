// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

func mustSquare(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	return m
}

// TestFillRandom_Deterministic: same seed and worker count give bit-identical
// matrices, independent of goroutine scheduling.
func TestFillRandom_Deterministic(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		a, b := mustSquare(t, 37), mustSquare(t, 37)
		a.FillRandom(42, matrix.WithWorkers(workers))
		b.FillRandom(42, matrix.WithWorkers(workers))
		require.Equal(t, a.Raw(), b.Raw(), "workers=%d", workers)
	}

	c, d := mustSquare(t, 16), mustSquare(t, 16)
	c.FillRandom(42)
	d.FillRandom(43)
	require.NotEqual(t, c.Raw(), d.Raw())
}

func TestFillRandom_Range(t *testing.T) {
	m := mustSquare(t, 64)
	m.FillRandom(7, matrix.WithWorkers(4))
	for _, v := range m.Raw() {
		require.GreaterOrEqual(t, v, matrix.DefaultMin)
		require.LessOrEqual(t, v, matrix.DefaultMax)
	}

	m.FillRandom(7, matrix.WithRange(2, 3))
	for _, v := range m.Raw() {
		require.GreaterOrEqual(t, v, 2.0)
		require.LessOrEqual(t, v, 3.0)
	}

	// degenerate interval
	m.FillRandom(7, matrix.WithRange(5, 5))
	for _, v := range m.Raw() {
		require.Equal(t, 5.0, v)
	}
}

func TestFillRandom_MoreWorkersThanRows(t *testing.T) {
	m := mustSquare(t, 2)
	m.FillRandom(1, matrix.WithWorkers(16))
	for _, v := range m.Raw() {
		require.NotZero(t, v)
	}
}

func TestFillZero(t *testing.T) {
	m := mustSquare(t, 9)
	m.FillRandom(3)
	m.FillZero(matrix.WithWorkers(4))
	for _, v := range m.Raw() {
		require.Zero(t, v)
	}
}

// TestStripe_Partition: stripes of every worker tile [0, n) exactly once.
func TestStripe_Partition(t *testing.T) {
	for _, n := range []int{1, 7, 10, 64} {
		for _, workers := range []int{1, 2, 3, 8, 100} {
			seen := make([]int, n)
			for w := 0; w < workers; w++ {
				lo, hi := matrix.ExportedStripe(n, workers, w)
				require.LessOrEqual(t, lo, hi)
				for i := lo; i < hi; i++ {
					seen[i]++
				}
			}
			for i, c := range seen {
				require.Equalf(t, 1, c, "n=%d workers=%d row=%d", n, workers, i)
			}
		}
	}
}

func TestDeriveSeed_DistinctStreams(t *testing.T) {
	seen := make(map[int64]struct{})
	for s := uint64(0); s < 256; s++ {
		v := matrix.ExportedDeriveSeed(42, s)
		_, dup := seen[v]
		require.False(t, dup, "stream %d collides", s)
		seen[v] = struct{}{}
	}
	require.Equal(t, matrix.ExportedDeriveSeed(1, 0), matrix.ExportedDeriveSeed(1, 0))
}
