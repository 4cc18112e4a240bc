// SPDX-License-Identifier: MIT

// Package kernel - serial loop-order kernels.
//
// All six compute C = A × B over the flat row-major buffers
// (A[i*n+k], B[k*n+j], C[i*n+j]); only the nesting order differs:
//
//	IJK, JIK: k innermost → each C cell is finished in a register and
//	          stored once, so C needs no zeroing.
//	IKJ, KIJ: j innermost → unit stride over rows of B and C.
//	JKI, KJI: i innermost → stride-n walk down columns of A and C.
//
// The accumulating orders (IKJ, JKI, KIJ, KJI) zero C first.
package kernel

import "github.com/katalvlaran/matbench/matrix"

// SerialIJK computes c = a × b with loop order i → j → k.
// Complexity: O(n³) time, O(1) extra space.
func SerialIJK(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	for i := 0; i < n; i++ {
		rowA := A[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			var sum float64
			for k, aik := range rowA {
				sum += aik * B[k*n+j]
			}
			C[i*n+j] = sum
		}
	}
}

// SerialIKJ computes c = a × b with loop order i → k → j.
// The inner loop streams one row of B into one row of C.
func SerialIKJ(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	for i := 0; i < n; i++ {
		rowC := C[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			aik := A[i*n+k]
			rowB := B[k*n : (k+1)*n]
			for j, bkj := range rowB {
				rowC[j] += aik * bkj
			}
		}
	}
}

// SerialJIK computes c = a × b with loop order j → i → k.
func SerialJIK(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			rowA := A[i*n : (i+1)*n]
			var sum float64
			for k, aik := range rowA {
				sum += aik * B[k*n+j]
			}
			C[i*n+j] = sum
		}
	}
}

// SerialJKI computes c = a × b with loop order j → k → i.
func SerialJKI(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			bkj := B[k*n+j]
			for i := 0; i < n; i++ {
				C[i*n+j] += A[i*n+k] * bkj
			}
		}
	}
}

// SerialKIJ computes c = a × b with loop order k → i → j.
func SerialKIJ(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	for k := 0; k < n; k++ {
		rowB := B[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			aik := A[i*n+k]
			rowC := C[i*n : (i+1)*n]
			for j, bkj := range rowB {
				rowC[j] += aik * bkj
			}
		}
	}
}

// SerialKJI computes c = a × b with loop order k → j → i.
// The worst order for row-major storage: both A and C are walked by column.
func SerialKJI(a, b, c *matrix.Dense) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			bkj := B[k*n+j]
			for i := 0; i < n; i++ {
				C[i*n+j] += A[i*n+k] * bkj
			}
		}
	}
}
