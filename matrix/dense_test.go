// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

func TestNewSquare(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		m, err := matrix.NewSquare(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.Nil(t, m)
	}

	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.Len(t, m.Raw(), 9)
	for _, v := range m.Raw() {
		require.Zero(t, v)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 3.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
	// row-major placement
	assert.Equal(t, 3.5, m.Raw()[2])
	assert.Equal(t, []float64{3.5, 0}, m.Row(1))
	assert.Nil(t, m.Row(2))

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
}

func TestIdentityAndFromRows(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Raw())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99 // input is copied
	require.Equal(t, []float64{1, 2, 3, 4}, m.Raw())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneDoesNotAlias(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestDense_DestroyAndString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	m.Destroy()
	require.Nil(t, m.Raw())
	require.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix)
}
