// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/kernel"
	"github.com/katalvlaran/matbench/matrix"
)

type tiledFn func(a, b, c *matrix.Dense, threads, block int)

var tiledKernels = map[string]tiledFn{
	"TILED/Serial":         func(a, b, c *matrix.Dense, _, block int) { kernel.Tiled(a, b, c, block) },
	"TILED/Parallel":       kernel.ParallelTiled,
	"TILED_TASKS/Parallel": kernel.ParallelTiledTasks,
}

// TestTiled_MatchesIKJ covers block sizes that divide n, that do not, that
// exceed n, and non-positive ones.
func TestTiled_MatchesIKJ(t *testing.T) {
	const n = 100
	a, b, ref := operands(t, n, 42)
	kernel.SerialIKJ(a, b, ref)

	for name, fn := range tiledKernels {
		for _, block := range []int{1, 7, 16, 25, 32, 99, 100, 500, 0, -3} {
			for _, threads := range []int{1, 3, 8} {
				label := fmt.Sprintf("%s/b=%d/t=%d", name, block, threads)
				c := newSquare(t, n)
				poison(c)
				fn(a, b, c, threads, block)
				requireClose(t, ref, c, label)
			}
		}
	}
}

// TestTiled_BlockDoesNotChangeResult: a 5×5 product with block 3 (ragged
// edge) equals the same product with block 5 (single tile).
func TestTiled_BlockDoesNotChangeResult(t *testing.T) {
	a, b, _ := operands(t, 5, 11)
	for name, fn := range tiledKernels {
		ragged, whole := newSquare(t, 5), newSquare(t, 5)
		fn(a, b, ragged, 4, 3)
		fn(a, b, whole, 4, 5)
		requireClose(t, whole, ragged, name)
	}
}

func TestTiled_TwoByTwo(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	for name, fn := range tiledKernels {
		for _, block := range []int{1, 2} {
			c := newSquare(t, 2)
			poison(c)
			fn(a, a, c, 2, block)
			require.Equal(t, []float64{7, 10, 15, 22}, c.Raw(), "%s block=%d", name, block)
		}
	}
}

func TestTiled_ShapeViolationIsNoop(t *testing.T) {
	a, b, _ := operands(t, 6, 2)
	out := newSquare(t, 4)
	for name, fn := range tiledKernels {
		fn(a, b, out, 2, 2)
		for _, v := range out.Raw() {
			require.Zero(t, v, name)
		}
	}
}

// TestTiled_ChunkIgnored: the blocked kernels schedule one tile at a time, so
// Params.Chunk has no effect on their output.
func TestTiled_ChunkIgnored(t *testing.T) {
	a, b, _ := operands(t, 29, 13)
	for _, k := range []kernel.Kernel{
		kernel.MustLookup(kernel.AlgTiled, kernel.Serial),
		kernel.MustLookup(kernel.AlgTiled, kernel.Parallel),
		kernel.MustLookup(kernel.AlgTiledTasks, kernel.Parallel),
	} {
		base := newSquare(t, 29)
		k.Multiply(a, b, base, kernel.Params{Threads: 3, Block: 6})
		for _, chunk := range []int{-1, 1, 5, 100} {
			c := newSquare(t, 29)
			poison(c)
			k.Multiply(a, b, c, kernel.Params{Threads: 3, Chunk: chunk, Block: 6})
			require.Equal(t, base.Raw(), c.Raw(), "%s chunk=%d", kernel.Name(k), chunk)
		}
	}
}
