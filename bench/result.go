// SPDX-License-Identifier: MIT

package bench

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/matbench/kernel"
	"github.com/katalvlaran/matbench/matrix"
)

// KernelResult is the measurement of one kernel invocation.
type KernelResult struct {
	Column    string // table column, e.g. "IKJ" or "P4T"
	Algorithm kernel.Algorithm
	Mode      kernel.Mode
	Params    kernel.Params
	Elapsed   time.Duration
	Speedup   float64 // reference elapsed / Elapsed
	Outcome   matrix.Outcome
}

// Row aggregates every kernel measured for one configuration of a category.
// Results follow the column order of the category's table.
type Row struct {
	Category  Category
	Size      int
	Threads   int
	Chunk     int
	Block     int
	Reference time.Duration
	Results   []KernelResult
}

// Keys returns the values of Category.KeyColumns for r.
func (r Row) Keys() []int {
	switch r.Category {
	case SerialPermutations:
		return []int{r.Size}
	case ParallelPermutations:
		return []int{r.Size, r.Threads, r.Chunk}
	case ScalingClassic, ScalingImproved:
		return []int{r.Size, r.Chunk}
	case Tiled:
		return []int{r.Size, r.Threads, r.Block}
	default:
		return nil
	}
}

// Columns returns the full table header for r: key columns, then one column
// per result.
func (r Row) Columns() []string {
	return append(r.Category.KeyColumns(), lo.Map(r.Results, func(k KernelResult, _ int) string {
		return k.Column
	})...)
}

// Speedups returns the Speedup of every result in column order.
func (r Row) Speedups() []float64 {
	return lo.Map(r.Results, func(k KernelResult, _ int) float64 { return k.Speedup })
}

// Seconds returns the elapsed time of every result in seconds.
func (r Row) Seconds() []float64 {
	return lo.Map(r.Results, func(k KernelResult, _ int) float64 { return k.Elapsed.Seconds() })
}

// Valid reports whether every result in r passed validation.
func (r Row) Valid() bool {
	return lo.EveryBy(r.Results, func(k KernelResult) bool { return k.Outcome.Pass })
}

// Failed returns the columns whose output did not match the reference.
func (r Row) Failed() []string {
	return lo.FilterMap(r.Results, func(k KernelResult, _ int) (string, bool) {
		return k.Column, !k.Outcome.Pass
	})
}

// Sink receives one Row per configuration. Write is called from the
// goroutine running the sweep, never concurrently.
type Sink interface {
	Write(Row) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Row) error

// Write calls f(row).
func (f SinkFunc) Write(row Row) error { return f(row) }

// Collector is an in-memory Sink. It is safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	rows []Row
}

// Write appends row.
func (c *Collector) Write(row Row) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, row)
	return nil
}

// Rows returns a copy of the collected rows.
func (c *Collector) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Row(nil), c.rows...)
}
