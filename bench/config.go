// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/matbench/matrix"
)

// Defaults for DefaultConfig.
const (
	DefaultSeed        = 42
	DefaultFillWorkers = 4
)

// Config describes one Cartesian sweep. Every category reads the axes it
// needs: Sizes always, Threads and Chunks for ParallelPermutations, Chunks and
// ScalingThreads for the scaling categories, Threads and Blocks for Tiled.
//
// FillWorkers is fixed rather than derived from the host so that the same
// Seed yields the same operands on every machine.
type Config struct {
	Sizes          []int   `mapstructure:"sizes"`
	Threads        []int   `mapstructure:"threads"`
	Chunks         []int   `mapstructure:"chunks"`
	Blocks         []int   `mapstructure:"blocks"`
	ScalingThreads []int   `mapstructure:"scaling_threads"`
	Seed           int64   `mapstructure:"seed"`
	Min            float64 `mapstructure:"min"`
	Max            float64 `mapstructure:"max"`
	Epsilon        float64 `mapstructure:"epsilon"`
	FillWorkers    int     `mapstructure:"fill_workers"`
}

// DefaultConfig returns the sweep of the reference study: sizes 100…1000 and
// 2000, threads 2/4/8/16, chunk 1, blocks sized for the host's L1.
func DefaultConfig() Config {
	return Config{
		Sizes:          []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 2000},
		Threads:        []int{2, 4, 8, 16},
		Chunks:         []int{1},
		Blocks:         []int{DescribeHost().DefaultBlockSize()},
		ScalingThreads: []int{2, 4, 8},
		Seed:           DefaultSeed,
		Min:            matrix.DefaultMin,
		Max:            matrix.DefaultMax,
		Epsilon:        matrix.DefaultEpsilon,
		FillWorkers:    DefaultFillWorkers,
	}
}

// Validate reports the first problem that makes cfg unusable, wrapped around
// ErrBadConfig. It does not modify cfg.
func (cfg Config) Validate() error {
	axes := []struct {
		name string
		vals []int
	}{
		{"sizes", cfg.Sizes},
		{"threads", cfg.Threads},
		{"chunks", cfg.Chunks},
		{"blocks", cfg.Blocks},
		{"scaling_threads", cfg.ScalingThreads},
	}
	for _, ax := range axes {
		if len(ax.vals) == 0 {
			return benchErrorf("Validate", fmt.Errorf("%w: %s is empty", ErrBadConfig, ax.name))
		}
		if bad, found := lo.Find(ax.vals, func(v int) bool { return v <= 0 }); found {
			return benchErrorf("Validate", fmt.Errorf("%w: %s contains %d", ErrBadConfig, ax.name, bad))
		}
	}

	switch {
	case math.IsNaN(cfg.Min) || math.IsNaN(cfg.Max) || math.IsInf(cfg.Min, 0) || math.IsInf(cfg.Max, 0):
		return benchErrorf("Validate", fmt.Errorf("%w: fill range must be finite", ErrBadConfig))
	case cfg.Min > cfg.Max:
		return benchErrorf("Validate", fmt.Errorf("%w: min %g > max %g", ErrBadConfig, cfg.Min, cfg.Max))
	case math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) || cfg.Epsilon < 0:
		return benchErrorf("Validate", fmt.Errorf("%w: epsilon %g", ErrBadConfig, cfg.Epsilon))
	case cfg.FillWorkers < 1:
		return benchErrorf("Validate", fmt.Errorf("%w: fill_workers %d", ErrBadConfig, cfg.FillWorkers))
	}
	return nil
}

// Normalized returns a copy of cfg with duplicate axis values removed, first
// occurrence kept.
func (cfg Config) Normalized() Config {
	out := cfg
	out.Sizes = lo.Uniq(cfg.Sizes)
	out.Threads = lo.Uniq(cfg.Threads)
	out.Chunks = lo.Uniq(cfg.Chunks)
	out.Blocks = lo.Uniq(cfg.Blocks)
	out.ScalingThreads = lo.Uniq(cfg.ScalingThreads)
	return out
}

// matrixOptions converts the fill and tolerance settings to matrix options.
func (cfg Config) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithRange(cfg.Min, cfg.Max),
		matrix.WithEpsilon(cfg.Epsilon),
		matrix.WithWorkers(cfg.FillWorkers),
	}
}
