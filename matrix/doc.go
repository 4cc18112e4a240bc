// Package matrix provides the dense square matrices that the multiplication
// kernels read from and write into, and the validator that certifies two
// products agree.
//
// The matrix package provides:
//
//   - Dense: an N×N matrix backed by ONE contiguous row-major []float64
//     (offset = row*N + col). Kernels borrow the buffer through Raw().
//   - FillZero / FillRandom: deterministic initialisation. FillRandom splits
//     rows across workers, each with its own RNG stream derived from the
//     global seed and the worker index.
//   - Compare: the elementwise validator returning an Outcome (pass/fail
//     verdict plus the maximum absolute difference).
//
// Ownership:
//
//	A Dense is owned by whoever created it. Kernels never retain a reference
//	after returning. Destroy releases the buffer; calling it twice or using a
//	destroyed matrix is a caller defect and is not checked.
//
// Complexity quicksheet:
//   - NewSquare, FillZero, FillRandom, Clone, Compare: O(N²).
//   - At, Set, Size, Raw: O(1).
package matrix
