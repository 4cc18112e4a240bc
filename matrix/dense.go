// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the raw buffer to kernels (Raw) so hot loops index the flat slice directly.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) zero-init; At/Set/Size/Raw: O(1); Clone: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a square row-major matrix of float64 values.
//   - n is the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int       // dimension, > 0 for every live matrix
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewSquare creates an n×n zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer of n*n elements.
//
// Behavior highlights:
//   - Every call allocates fresh storage, so two live matrices never alias.
//   - An allocation the runtime cannot satisfy is fatal for the process;
//     there is no retry path.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare(n int) (*Dense, error) {
	// Validate shape.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a Dense from a slice of equally sized rows.
// The input is copied; later mutation of rows does not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty.
//   - ErrNonSquare if any row length differs from len(rows).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	m, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf("FromRows", ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns the dimension n of the n×n matrix.
func (m *Dense) Size() int {
	return m.n
}

// Raw returns the backing row-major buffer (len == n*n).
// The slice is borrowed: callers may read and write elements but must not
// retain it beyond the owner's lifetime or append to it.
func (m *Dense) Raw() []float64 {
	return m.data
}

// Row returns the borrowed slice holding row i, or nil if i is out of range.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		return nil
	}

	return m.data[i*m.n : (i+1)*m.n]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with its own backing storage.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Destroy releases the backing storage. The matrix must not be used
// afterwards; double-destroy is prevented by ownership, not by a runtime check.
func (m *Dense) Destroy() {
	m.data = nil
	m.n = 0
}

// String implements fmt.Stringer for debugging small matrices.
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
