// Package workerpool provides the two concurrency shapes used by the parallel
// multiplication kernels.
//
//   - StaticFor: fork-join over [0, n) with OpenMP-style static scheduling.
//     The range is cut into chunks of `chunk` iterations and chunk q runs on
//     worker q mod threads. One goroutine per worker lives for the duration of
//     the call; the call returns only after every worker has finished.
//
//   - Queue: a bounded queue of task descriptors drained by a fixed set of
//     workers, with Wait as the "queue drained and nothing in flight" barrier.
//
// Neither shape supports cancellation: tasks are pure, short-lived and write
// only to the output region they own.
//
// Usage:
//
//	workerpool.StaticFor(n, threads, chunk, func(w, start, end int) {
//	    for i := start; i < end; i++ { processRow(i) }
//	})
//
//	q := workerpool.NewQueue(threads, 64, handleBlock)
//	defer q.Close()
//	for _, blk := range blocks { q.Submit(blk) }
//	q.Wait()
package workerpool
