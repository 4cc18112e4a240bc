// SPDX-License-Identifier: MIT

package workerpool

import (
	"runtime"
	"sync"
)

// Queue is a bounded task queue drained by a fixed pool of workers.
//
// Lifecycle: NewQueue starts the workers → Submit enqueues (blocking while the
// buffer is full) → Wait returns once every submitted task has been handled →
// Close stops the workers. Submit after Close is a programmer error and panics.
type Queue[T any] struct {
	tasks     chan T
	handle    func(T)
	pending   sync.WaitGroup // submitted but not yet finished
	workers   sync.WaitGroup // live drain goroutines
	closeOnce sync.Once
}

// NewQueue starts `workers` goroutines that call handle for each submitted
// task. If workers <= 0, uses GOMAXPROCS. capacity bounds the number of
// queued-but-unclaimed tasks; capacity <= 0 means 2*workers.
func NewQueue[T any](workers, capacity int, handle func(T)) *Queue[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if capacity <= 0 {
		capacity = workers * 2
	}

	q := &Queue[T]{
		tasks:  make(chan T, capacity),
		handle: handle,
	}
	q.workers.Add(workers)
	for range workers {
		go q.drain()
	}

	return q
}

// drain is the main loop of each worker goroutine.
func (q *Queue[T]) drain() {
	defer q.workers.Done()
	for t := range q.tasks {
		q.handle(t)
		q.pending.Done()
	}
}

// Submit enqueues one task, blocking while the queue is full.
func (q *Queue[T]) Submit(t T) {
	q.pending.Add(1)
	q.tasks <- t
}

// Wait blocks until the queue is drained and no task is in flight.
// Everything the handlers wrote happens-before Wait returns.
func (q *Queue[T]) Wait() {
	q.pending.Wait()
}

// Close shuts the workers down after the remaining tasks complete.
// Calling Close multiple times is safe.
func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.tasks)
		q.workers.Wait()
	})
}
