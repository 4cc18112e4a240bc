// SPDX-License-Identifier: MIT

// Package matrix - parallel initialisation of Dense buffers.
//
// Both fills split the rows into `workers` contiguous stripes and run one
// goroutine per stripe (fork-join through errgroup). Stripe w always covers the
// same rows for a given (n, workers), which is what makes FillRandom
// reproducible: the value at (i, j) depends only on the seed, the worker count
// and the position inside the stripe.
package matrix

import "golang.org/x/sync/errgroup"

// stripe returns the half-open row range [lo, hi) owned by worker w out of
// workers for an n-row matrix. Trailing workers may own an empty range.
func stripe(n, workers, w int) (lo, hi int) {
	per := (n + workers - 1) / workers
	lo = min(w*per, n)
	hi = min(lo+per, n)
	return lo, hi
}

// forEachStripe runs fn once per non-empty stripe and waits for all of them.
func forEachStripe(n, workers int, fn func(w, lo, hi int)) {
	if workers > n {
		workers = n
	}
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := stripe(n, workers, w)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			fn(w, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the join barrier
}

// FillZero sets every element to 0.
// Complexity: O(n²) work split across GOMAXPROCS stripes.
func (m *Dense) FillZero(opts ...Option) {
	o := gatherOptions(opts...)
	n := m.n
	forEachStripe(n, o.workers, func(_, lo, hi int) {
		clear(m.data[lo*n : hi*n])
	})
}

// FillRandom overwrites the matrix with values drawn uniformly from
// [min, max] (WithRange, default [DefaultMin, DefaultMax]).
//
// Implementation:
//   - Stage 1: resolve options; clamp workers to n.
//   - Stage 2: worker w seeds a private *rand.Rand with deriveSeed(seed, w).
//   - Stage 3: each worker fills its stripe row by row; join.
//
// Determinism:
//   - Same seed and same worker count ⇒ bit-identical matrix, regardless of
//     goroutine scheduling.
//
// Complexity:
//   - Time O(n²), Space O(workers) for the generators.
func (m *Dense) FillRandom(seed int64, opts ...Option) {
	o := gatherOptions(opts...)
	n := m.n
	span := o.max - o.min
	forEachStripe(n, o.workers, func(w, lo, hi int) {
		rng := workerRNG(seed, w)
		row := m.data[lo*n : hi*n]
		for idx := range row {
			row[idx] = o.min + span*rng.Float64()
		}
	})
}
