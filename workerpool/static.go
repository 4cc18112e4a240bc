// SPDX-License-Identifier: MIT

package workerpool

import "sync"

// Range is a half-open iteration interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of iterations in r.
func (r Range) Len() int { return r.End - r.Start }

// DefaultChunk returns the chunk size OpenMP uses for schedule(static) without
// an explicit chunk: one contiguous block of ceil(n/threads) per worker.
func DefaultChunk(n, threads int) int {
	if threads < 1 {
		threads = 1
	}
	c := (n + threads - 1) / threads
	if c < 1 {
		c = 1
	}
	return c
}

// Normalize clamps threads to ≥ 1 and replaces a non-positive chunk with
// DefaultChunk(n, threads).
func Normalize(n, threads, chunk int) (int, int) {
	if threads < 1 {
		threads = 1
	}
	if chunk < 1 {
		chunk = DefaultChunk(n, threads)
	}
	return threads, chunk
}

// Owner returns the worker that StaticFor(n, threads, chunk, …) assigns
// iteration i to.
func Owner(i, n, threads, chunk int) int {
	threads, chunk = Normalize(n, threads, chunk)
	return (i / chunk) % threads
}

// Active returns how many workers own at least one chunk of [0, n).
func Active(n, threads, chunk int) int {
	if n <= 0 {
		return 0
	}
	threads, chunk = Normalize(n, threads, chunk)
	return min(threads, (n+chunk-1)/chunk)
}

// Ranges lists, in increasing order, the chunks of [0, n) that worker w owns
// under static round-robin scheduling: chunk q goes to worker q mod threads.
func Ranges(w, n, threads, chunk int) []Range {
	threads, chunk = Normalize(n, threads, chunk)
	var out []Range
	for start := w * chunk; start < n; start += threads * chunk {
		out = append(out, Range{Start: start, End: min(start+chunk, n)})
	}
	return out
}

// ForkJoin runs fn(0) … fn(workers-1) concurrently and returns after all of
// them have returned. A single worker runs on the calling goroutine.
func ForkJoin(workers int, fn func(w int)) {
	if workers <= 0 {
		return
	}
	if workers == 1 {
		fn(0)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()
			fn(w)
		}()
	}
	wg.Wait()
}

// StaticFor executes fn over [0, n) using `threads` workers and static
// round-robin chunking (chunk < 1 selects DefaultChunk).
//
// fn receives the worker index and a range [start, end) of at most chunk
// iterations. A worker is called once per chunk it owns, in increasing order
// of start. Workers owning no chunk are never spawned.
//
// Blocks until all work completes.
func StaticFor(n, threads, chunk int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	threads, chunk = Normalize(n, threads, chunk)

	ForkJoin(Active(n, threads, chunk), func(w int) {
		for start := w * chunk; start < n; start += threads * chunk {
			fn(w, start, min(start+chunk, n))
		}
	})
}
