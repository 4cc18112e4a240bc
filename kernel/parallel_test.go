// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/kernel"
	"github.com/katalvlaran/matbench/matrix"
)

var parallelKernels = map[kernel.Algorithm]func(a, b, c *matrix.Dense, threads, chunk int){
	kernel.AlgIJK: kernel.ParallelIJK,
	kernel.AlgIKJ: kernel.ParallelIKJ,
	kernel.AlgJIK: kernel.ParallelJIK,
	kernel.AlgJKI: kernel.ParallelJKI,
	kernel.AlgKIJ: kernel.ParallelKIJ,
	kernel.AlgKJI: kernel.ParallelKJI,
}

// TestParallel_MatchesSerial: every parallel order equals serial IJK for
// threads ∈ {1,2,4,8} × chunk ∈ {1, n/10, n}, plus the default chunk.
func TestParallel_MatchesSerial(t *testing.T) {
	const n = 100
	a, b, ref := operands(t, n, 42)
	kernel.SerialIJK(a, b, ref)

	for _, alg := range kernel.LoopOrders() {
		for _, threads := range []int{1, 2, 4, 8} {
			for _, chunk := range []int{0, 1, n / 10, n} {
				name := fmt.Sprintf("%s/t=%d/c=%d", alg, threads, chunk)
				t.Run(name, func(t *testing.T) {
					c := newSquare(t, n)
					poison(c)
					parallelKernels[alg](a, b, c, threads, chunk)
					requireClose(t, ref, c, name)
				})
			}
		}
	}
}

// TestParallel_OddShapes: more threads than rows, chunk larger than n, size 1,
// non-positive threads.
func TestParallel_OddShapes(t *testing.T) {
	cases := []struct{ n, threads, chunk int }{
		{1, 4, 1},
		{3, 16, 1},
		{13, 5, 100},
		{13, 0, -1},
		{31, 7, 3},
	}
	for _, tc := range cases {
		a, b, ref := operands(t, tc.n, 9)
		kernel.SerialIKJ(a, b, ref)
		for _, alg := range kernel.LoopOrders() {
			c := newSquare(t, tc.n)
			poison(c)
			parallelKernels[alg](a, b, c, tc.threads, tc.chunk)
			requireClose(t, ref, c, fmt.Sprintf("%s %+v", alg, tc))
		}
	}
}

// TestParallel_Repeatable: the partitioned index is never a reduction index,
// so every cell is summed in the same order on every run, bit for bit.
func TestParallel_Repeatable(t *testing.T) {
	a, b, _ := operands(t, 48, 3)
	for _, alg := range kernel.LoopOrders() {
		first, second := newSquare(t, 48), newSquare(t, 48)
		parallelKernels[alg](a, b, first, 8, 2)
		parallelKernels[alg](a, b, second, 3, 5)
		require.Equal(t, first.Raw(), second.Raw(), alg.String())
	}
}

func TestParallel_ShapeViolationIsNoop(t *testing.T) {
	a, b, _ := operands(t, 4, 1)
	out := newSquare(t, 5)
	for _, alg := range kernel.LoopOrders() {
		parallelKernels[alg](a, b, out, 4, 1)
		parallelKernels[alg](a, nil, out, 4, 1)
		for _, v := range out.Raw() {
			require.Zero(t, v, alg.String())
		}
	}
}
