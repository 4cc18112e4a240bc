// SPDX-License-Identifier: MIT

// Package matrix - RNG utilities for FillRandom.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand across
//     fill workers; each worker builds its own stream with workerRNG.
package matrix

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// A SplitMix64-style finalizer removes the correlation between neighbouring
// worker indices, so streams 0,1,2,… of one seed do not overlap visibly.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// workerRNG returns the private stream of fill worker w for the given seed.
func workerRNG(seed int64, w int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(w))))
}
