// SPDX-License-Identifier: MIT

// Package kernel - parallel loop-order kernels.
//
// Every kernel here forks `threads` workers for the duration of the call and
// joins them before returning (workerpool.StaticFor / ForkJoin). The
// partitioned dimension is chosen per order so that no two workers ever write
// the same output cell:
//
//	order  outer loop            partitioned   owner of C[i,j]
//	IJK    i                     i             worker of row i
//	IKJ    i                     i             worker of row i
//	JIK    j                     j             worker of column j
//	JKI    j                     j             worker of column j
//	KIJ    k (serial per worker) i             worker of row i
//	KJI    k (serial per worker) j             worker of column j
//
// Each worker also zeroes exactly the cells it owns, so no separate zeroing
// pass has to be ordered before the fork.
package kernel

import (
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/workerpool"
)

// ParallelIJK computes c = a × b, rows statically partitioned.
func ParallelIJK(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	workerpool.StaticFor(n, threads, chunk, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			rowA := A[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				var sum float64
				for k, aik := range rowA {
					sum += aik * B[k*n+j]
				}
				C[i*n+j] = sum
			}
		}
	})
}

// ParallelIKJ computes c = a × b, rows statically partitioned.
func ParallelIKJ(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	workerpool.StaticFor(n, threads, chunk, func(_, lo, hi int) {
		clear(C[lo*n : hi*n])
		for i := lo; i < hi; i++ {
			rowC := C[i*n : (i+1)*n]
			for k := 0; k < n; k++ {
				aik := A[i*n+k]
				rowB := B[k*n : (k+1)*n]
				for j, bkj := range rowB {
					rowC[j] += aik * bkj
				}
			}
		}
	})
}

// ParallelJIK computes c = a × b, columns statically partitioned.
func ParallelJIK(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	workerpool.StaticFor(n, threads, chunk, func(_, lo, hi int) {
		for j := lo; j < hi; j++ {
			for i := 0; i < n; i++ {
				rowA := A[i*n : (i+1)*n]
				var sum float64
				for k, aik := range rowA {
					sum += aik * B[k*n+j]
				}
				C[i*n+j] = sum
			}
		}
	})
}

// ParallelJKI computes c = a × b, columns statically partitioned.
func ParallelJKI(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()

	workerpool.StaticFor(n, threads, chunk, func(_, lo, hi int) {
		for j := lo; j < hi; j++ {
			zeroColumn(C, n, j)
			for k := 0; k < n; k++ {
				bkj := B[k*n+j]
				for i := 0; i < n; i++ {
					C[i*n+j] += A[i*n+k] * bkj
				}
			}
		}
	})
}

// ParallelKIJ computes c = a × b keeping k as the outermost loop.
// k is not partitioned: every worker sweeps all of k over its own rows.
func ParallelKIJ(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	threads, chunk = workerpool.Normalize(n, threads, chunk)

	workerpool.ForkJoin(workerpool.Active(n, threads, chunk), func(w int) {
		rows := workerpool.Ranges(w, n, threads, chunk)
		for _, r := range rows {
			clear(C[r.Start*n : r.End*n])
		}
		for k := 0; k < n; k++ {
			rowB := B[k*n : (k+1)*n]
			for _, r := range rows {
				for i := r.Start; i < r.End; i++ {
					aik := A[i*n+k]
					rowC := C[i*n : (i+1)*n]
					for j, bkj := range rowB {
						rowC[j] += aik * bkj
					}
				}
			}
		}
	})
}

// ParallelKJI computes c = a × b keeping k as the outermost loop.
// k is not partitioned: every worker sweeps all of k over its own columns.
func ParallelKJI(a, b, c *matrix.Dense, threads, chunk int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	threads, chunk = workerpool.Normalize(n, threads, chunk)

	workerpool.ForkJoin(workerpool.Active(n, threads, chunk), func(w int) {
		cols := workerpool.Ranges(w, n, threads, chunk)
		for _, r := range cols {
			for j := r.Start; j < r.End; j++ {
				zeroColumn(C, n, j)
			}
		}
		for k := 0; k < n; k++ {
			for _, r := range cols {
				for j := r.Start; j < r.End; j++ {
					bkj := B[k*n+j]
					for i := 0; i < n; i++ {
						C[i*n+j] += A[i*n+k] * bkj
					}
				}
			}
		}
	})
}

// zeroColumn clears column j of the n×n row-major buffer C.
func zeroColumn(C []float64, n, j int) {
	for i := 0; i < n; i++ {
		C[i*n+j] = 0
	}
}
