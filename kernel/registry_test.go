// SPDX-License-Identifier: MIT
package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/kernel"
)

func TestAll_Exhaustive(t *testing.T) {
	all := kernel.All()
	require.Len(t, all, 15)

	names := make(map[string]bool, len(all))
	for _, k := range all {
		name := kernel.Name(k)
		require.False(t, names[name], "duplicate %s", name)
		names[name] = true

		// every listed kernel is reachable through Lookup
		got, err := kernel.Lookup(k.Algorithm(), k.Mode())
		require.NoError(t, err)
		require.Equal(t, name, kernel.Name(got))
	}

	for _, alg := range kernel.LoopOrders() {
		assert.True(t, names[alg.String()+"/Serial"])
		assert.True(t, names[alg.String()+"/Parallel"])
	}
	assert.True(t, names["TILED/Serial"])
	assert.True(t, names["TILED/Parallel"])
	assert.True(t, names["TILED_TASKS/Parallel"])
}

func TestLookup_Errors(t *testing.T) {
	_, err := kernel.Lookup(kernel.Algorithm(99), kernel.Serial)
	require.ErrorIs(t, err, kernel.ErrUnknownAlgorithm)

	_, err = kernel.Lookup(kernel.AlgIJK, kernel.Mode(7))
	require.ErrorIs(t, err, kernel.ErrUnknownMode)

	_, err = kernel.Lookup(kernel.AlgTiledTasks, kernel.Serial)
	require.ErrorIs(t, err, kernel.ErrUnsupported)

	require.Panics(t, func() { kernel.MustLookup(kernel.AlgTiledTasks, kernel.Serial) })
}

func TestAlgorithm_StringParse(t *testing.T) {
	for a := kernel.AlgIJK; a <= kernel.AlgTiledTasks; a++ {
		require.True(t, a.Valid())
		got, err := kernel.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}

	got, err := kernel.ParseAlgorithm(" ikj ")
	require.NoError(t, err)
	require.Equal(t, kernel.AlgIKJ, got)

	_, err = kernel.ParseAlgorithm("IJJ")
	require.ErrorIs(t, err, kernel.ErrUnknownAlgorithm)

	require.Equal(t, "Algorithm(-1)", kernel.Algorithm(-1).String())
	require.False(t, kernel.Algorithm(-1).Valid())
	require.True(t, kernel.AlgKJI.IsLoopOrder())
	require.False(t, kernel.AlgTiled.IsLoopOrder())
	require.Equal(t, "Parallel", kernel.Parallel.String())
	require.Equal(t, "Mode(5)", kernel.Mode(5).String())
}
