// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/matbench/bench"
)

// Metric selects what a result cell holds.
type Metric int

const (
	// MetricSpeedup writes reference_time / kernel_time.
	MetricSpeedup Metric = iota
	// MetricSeconds writes the kernel's elapsed wall-clock seconds.
	MetricSeconds
)

// String returns "speedup" or "seconds".
func (m Metric) String() string {
	switch m {
	case MetricSpeedup:
		return "speedup"
	case MetricSeconds:
		return "seconds"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps "speedup" or "seconds" (case-insensitive) to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "speedup":
		return MetricSpeedup, nil
	case "seconds":
		return MetricSeconds, nil
	default:
		return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
	}
}

// Writer is a bench.Sink that appends each row to its category's table
// under Dir.
type Writer struct {
	Dir    string
	Metric Metric
}

var _ bench.Sink = Writer{}

// NewWriter returns a Writer for dir with the given metric.
func NewWriter(dir string, metric Metric) Writer {
	return Writer{Dir: dir, Metric: metric}
}

// Table returns the table row would be appended to.
func (w Writer) Table(row bench.Row) Table {
	return NewTable(w.Dir, row.Category.String(), row.Columns())
}

// Write implements bench.Sink.
func (w Writer) Write(row bench.Row) error {
	return w.Table(row).Append(w.Record(row))
}

// Record formats row as CSV fields: integer keys, then one value per result
// with six decimals.
func (w Writer) Record(row bench.Row) []string {
	values := row.Speedups()
	if w.Metric == MetricSeconds {
		values = row.Seconds()
	}
	keys := lo.Map(row.Keys(), func(k int, _ int) string { return strconv.Itoa(k) })
	return append(keys, lo.Map(values, func(v float64, _ int) string {
		return strconv.FormatFloat(v, 'f', 6, 64)
	})...)
}

// Clear removes the table file of every category under w.Dir.
func (w Writer) Clear() error {
	for _, cat := range bench.Categories() {
		if err := NewTable(w.Dir, cat.String(), nil).Clear(); err != nil {
			return err
		}
	}
	return nil
}
