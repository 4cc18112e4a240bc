// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/kernel"
	"github.com/katalvlaran/matbench/matrix"
)

// serialKernels maps every loop order to its serial function.
var serialKernels = map[kernel.Algorithm]func(a, b, c *matrix.Dense){
	kernel.AlgIJK: kernel.SerialIJK,
	kernel.AlgIKJ: kernel.SerialIKJ,
	kernel.AlgJIK: kernel.SerialJIK,
	kernel.AlgJKI: kernel.SerialJKI,
	kernel.AlgKIJ: kernel.SerialKIJ,
	kernel.AlgKJI: kernel.SerialKJI,
}

// TestSerial_TwoByTwo: [[1,2],[3,4]]² = [[7,10],[15,22]] exactly, for every order.
func TestSerial_TwoByTwo(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	for _, alg := range kernel.LoopOrders() {
		c := newSquare(t, 2)
		poison(c)
		serialKernels[alg](a, a, c)
		require.Equal(t, []float64{7, 10, 15, 22}, c.Raw(), alg.String())
	}
}

// TestSerial_Identity: I×B = B and A×I = A exactly.
func TestSerial_Identity(t *testing.T) {
	id, err := matrix.Identity(17)
	require.NoError(t, err)
	a, b, _ := operands(t, 17, 5)

	for _, alg := range kernel.LoopOrders() {
		c := newSquare(t, 17)
		serialKernels[alg](id, b, c)
		require.Equal(t, b.Raw(), c.Raw(), "I×B %s", alg)

		serialKernels[alg](a, id, c)
		require.Equal(t, a.Raw(), c.Raw(), "A×I %s", alg)
	}
}

// TestSerial_OrdersAgree: all six orders match IJK within epsilon, on sizes
// that do and do not align with anything.
func TestSerial_OrdersAgree(t *testing.T) {
	for _, n := range []int{1, 7, 64, 100} {
		a, b, ref := operands(t, n, 42)
		kernel.SerialIJK(a, b, ref)

		for _, alg := range kernel.LoopOrders() {
			c := newSquare(t, n)
			poison(c)
			serialKernels[alg](a, b, c)
			requireClose(t, ref, c, fmt.Sprintf("n=%d %s", n, alg))
		}
	}
}

// TestSerial_ShapeViolationIsNoop: mismatched, nil or aliased operands leave
// C untouched.
func TestSerial_ShapeViolationIsNoop(t *testing.T) {
	a, b, _ := operands(t, 4, 1)
	small := newSquare(t, 3)
	poison(small)
	before := append([]float64(nil), small.Raw()...)

	for _, alg := range kernel.LoopOrders() {
		fn := serialKernels[alg]
		fn(a, b, small)
		fn(nil, b, small)
		require.Equal(t, before, small.Raw(), alg.String())

		// aliasing: C == A must not be computed in place
		aliased := a.Clone()
		snapshot := append([]float64(nil), aliased.Raw()...)
		fn(aliased, b, aliased)
		require.Equal(t, snapshot, aliased.Raw(), alg.String())
	}
}
