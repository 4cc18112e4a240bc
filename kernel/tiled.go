// SPDX-License-Identifier: MIT

// Package kernel - cache-blocked (tiled) kernels.
//
// The (i, j, k) iteration space is cut into cubes of edge `block`. The last
// cube along each axis is truncated to the matrix edge, so any block ≥ 1 is
// valid whether or not it divides n.
//
//	Tiled               serial bi → bj → bk, ikj inside each cube.
//	ParallelTiled       the (bi, bj) grid is flattened and statically split
//	                    across workers; cube results are folded into C with an
//	                    atomic add.
//	ParallelTiledTasks  one task per (bi, bj) output tile, each sweeping all
//	                    of bk; tasks are drained from a bounded queue. Tiles
//	                    are disjoint, so plain stores suffice.
package kernel

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/workerpool"
)

// tile describes one output rectangle C[i0:i1, j0:j1].
type tile struct {
	i0, i1 int
	j0, j1 int
}

// normBlock maps a non-positive block to n (one tile covers the matrix).
func normBlock(n, block int) int {
	if block < 1 || block > n {
		return n
	}
	return block
}

// blocksPerSide returns ceil(n/block).
func blocksPerSide(n, block int) int {
	return (n + block - 1) / block
}

// tileAt returns the output rectangle of flattened grid index p.
func tileAt(p, n, block, nb int) tile {
	i0 := (p / nb) * block
	j0 := (p % nb) * block
	return tile{i0: i0, i1: min(i0+block, n), j0: j0, j1: min(j0+block, n)}
}

// accumulateTile adds the full k sweep of A[t.rows, :] × B[:, t.cols] into C,
// one k-cube at a time, using ikj order inside each cube.
func accumulateTile(A, B, C []float64, n, block int, t tile) {
	for bk := 0; bk < n; bk += block {
		kEnd := min(bk+block, n)
		for i := t.i0; i < t.i1; i++ {
			rowC := C[i*n+t.j0 : i*n+t.j1]
			for k := bk; k < kEnd; k++ {
				aik := A[i*n+k]
				rowB := B[k*n+t.j0 : k*n+t.j1]
				for j, bkj := range rowB {
					rowC[j] += aik * bkj
				}
			}
		}
	}
}

// Tiled computes c = a × b with cubic blocking of edge `block`.
//
// Implementation:
//   - Stage 1: zero C.
//   - Stage 2: walk the (bi, bj) tiles row-major; tile bounds are clamped to n.
//   - Stage 3: per tile sweep bk, running i → k → j inside each cube.
//
// Complexity:
//   - Time O(n³), Space O(1). The working set per cube is 3·block² values.
func Tiled(a, b, c *matrix.Dense, block int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	block = normBlock(n, block)
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	nb := blocksPerSide(n, block)
	for p := 0; p < nb*nb; p++ {
		accumulateTile(A, B, C, n, block, tileAt(p, n, block, nb))
	}
}

// ParallelTiled computes c = a × b with cubic blocking, splitting the
// flattened (bi, bj) grid across `threads` workers in round-robin chunks of
// one tile. For every cube a worker forms the partial dot product of each
// (i, j) over the cube's k range and adds it to C atomically.
//
// The scheduling chunk is always one tile: a tile already groups block²
// cells, so Params.Chunk is ignored by this kernel.
func ParallelTiled(a, b, c *matrix.Dense, threads, block int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	block = normBlock(n, block)
	nb := blocksPerSide(n, block)
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	workerpool.StaticFor(nb*nb, threads, 1, func(_, lo, hi int) {
		for p := lo; p < hi; p++ {
			t := tileAt(p, n, block, nb)
			for bk := 0; bk < n; bk += block {
				kEnd := min(bk+block, n)
				for i := t.i0; i < t.i1; i++ {
					for j := t.j0; j < t.j1; j++ {
						var sum float64
						for k := bk; k < kEnd; k++ {
							sum += A[i*n+k] * B[k*n+j]
						}
						atomicAddFloat64(&C[i*n+j], sum)
					}
				}
			}
		}
	})
}

// ParallelTiledTasks computes c = a × b with one task per output tile.
//
// Implementation:
//   - Stage 1: zero C; start a queue of `threads` drainers.
//   - Stage 2: enqueue every (bi, bj) tile; each task runs the whole bk sweep
//     for its tile (accumulateTile).
//   - Stage 3: Wait for the drain barrier; close the queue.
//
// Tiles partition C, so two tasks never write the same cell and no atomics
// are needed. The tile → task mapping in Stage 2 must keep that property.
func ParallelTiledTasks(a, b, c *matrix.Dense, threads, block int) {
	if !ready(a, b, c) {
		return
	}
	n := a.Size()
	block = normBlock(n, block)
	nb := blocksPerSide(n, block)
	A, B, C := a.Raw(), b.Raw(), c.Raw()
	clear(C)

	if threads < 1 {
		threads = 1
	}
	q := workerpool.NewQueue(threads, 2*threads, func(t tile) {
		accumulateTile(A, B, C, n, block, t)
	})
	defer q.Close()

	for p := 0; p < nb*nb; p++ {
		q.Submit(tileAt(p, n, block, nb))
	}
	q.Wait()
}

// atomicAddFloat64 performs *addr += delta as a CAS loop on the IEEE-754 bits.
func atomicAddFloat64(addr *float64, delta float64) {
	p := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(p)
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(p, old, next) {
			return
		}
	}
}
