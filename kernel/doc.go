// Package kernel implements the dense square multiplication kernels
// C = A × B whose throughput the benchmark compares.
//
// 🚀 Families:
//
//   - Serial loop orders: SerialIJK, SerialIKJ, SerialJIK, SerialJKI,
//     SerialKIJ, SerialKJI: one function per permutation of the loop
//     indices, differing only in memory-access stride.
//   - Parallel loop orders: ParallelIJK … ParallelKJI: the same orders
//     with the partitioned dimension split into chunks that are assigned
//     round-robin to the workers (static schedule).
//   - Blocked: Tiled (serial), ParallelTiled (static partition of the
//     block grid, atomic accumulation) and ParallelTiledTasks (one task per
//     output tile drained from a bounded queue).
//
// ✨ Race freedom:
//
//	Every parallel loop kernel partitions a NON-reduction index. IJK, IKJ and
//	KIJ split rows (i); JIK, JKI and KJI split columns (j). For KIJ and KJI
//	the reduction index k stays the outermost loop but runs serially inside
//	each worker, so every output cell has exactly one writer.
//
// ⚙️ Contract:
//
//	All kernels require A, B and C to be non-nil, of equal size, and C to be
//	distinct from A and B. A kernel called in violation of that contract
//	returns without touching C; callers validate with matrix.ValidateSameSize
//	first. C is fully overwritten; its previous contents never leak into the
//	result.
//
// The Registry (Lookup, All) maps the closed Algorithm × Mode enumeration to
// Kernel values so that callers can iterate variants without function tables.
package kernel
