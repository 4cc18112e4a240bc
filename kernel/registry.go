// SPDX-License-Identifier: MIT

// Package kernel - registry of (Algorithm, Mode) variants.
//
// Each family is one Kernel implementation whose Multiply dispatches through
// a switch over every loop-order tag. The default branches are unreachable
// through Lookup/All; they panic if a new tag is added without a kernel.
package kernel

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// serialLoop is the Serial variant of one loop permutation.
type serialLoop struct{ alg Algorithm }

func (k serialLoop) Algorithm() Algorithm { return k.alg }
func (k serialLoop) Mode() Mode           { return Serial }

func (k serialLoop) Multiply(a, b, c *matrix.Dense, _ Params) {
	switch k.alg {
	case AlgIJK:
		SerialIJK(a, b, c)
	case AlgIKJ:
		SerialIKJ(a, b, c)
	case AlgJIK:
		SerialJIK(a, b, c)
	case AlgJKI:
		SerialJKI(a, b, c)
	case AlgKIJ:
		SerialKIJ(a, b, c)
	case AlgKJI:
		SerialKJI(a, b, c)
	default:
		panic(fmt.Sprintf("kernel: serial loop kernel built for %v", k.alg))
	}
}

// parallelLoop is the Parallel variant of one loop permutation.
type parallelLoop struct{ alg Algorithm }

func (k parallelLoop) Algorithm() Algorithm { return k.alg }
func (k parallelLoop) Mode() Mode           { return Parallel }

func (k parallelLoop) Multiply(a, b, c *matrix.Dense, p Params) {
	switch k.alg {
	case AlgIJK:
		ParallelIJK(a, b, c, p.Threads, p.Chunk)
	case AlgIKJ:
		ParallelIKJ(a, b, c, p.Threads, p.Chunk)
	case AlgJIK:
		ParallelJIK(a, b, c, p.Threads, p.Chunk)
	case AlgJKI:
		ParallelJKI(a, b, c, p.Threads, p.Chunk)
	case AlgKIJ:
		ParallelKIJ(a, b, c, p.Threads, p.Chunk)
	case AlgKJI:
		ParallelKJI(a, b, c, p.Threads, p.Chunk)
	default:
		panic(fmt.Sprintf("kernel: parallel loop kernel built for %v", k.alg))
	}
}

// tiledSerial wraps Tiled.
type tiledSerial struct{}

func (tiledSerial) Algorithm() Algorithm { return AlgTiled }
func (tiledSerial) Mode() Mode           { return Serial }
func (tiledSerial) Multiply(a, b, c *matrix.Dense, p Params) {
	Tiled(a, b, c, p.Block)
}

// tiledParallel wraps ParallelTiled.
type tiledParallel struct{}

func (tiledParallel) Algorithm() Algorithm { return AlgTiled }
func (tiledParallel) Mode() Mode           { return Parallel }
func (tiledParallel) Multiply(a, b, c *matrix.Dense, p Params) {
	ParallelTiled(a, b, c, p.Threads, p.Block)
}

// tiledTasks wraps ParallelTiledTasks.
type tiledTasks struct{}

func (tiledTasks) Algorithm() Algorithm { return AlgTiledTasks }
func (tiledTasks) Mode() Mode           { return Parallel }
func (tiledTasks) Multiply(a, b, c *matrix.Dense, p Params) {
	ParallelTiledTasks(a, b, c, p.Threads, p.Block)
}

// Lookup returns the kernel for (alg, mode).
//
// Errors:
//   - ErrUnknownAlgorithm for an Algorithm outside the closed set.
//   - ErrUnknownMode for a Mode other than Serial/Parallel.
//   - ErrUnsupported for (AlgTiledTasks, Serial).
func Lookup(alg Algorithm, mode Mode) (Kernel, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("Lookup(%v): %w", alg, ErrUnknownAlgorithm)
	}
	if mode != Serial && mode != Parallel {
		return nil, fmt.Errorf("Lookup(%v): %w", mode, ErrUnknownMode)
	}

	switch {
	case alg.IsLoopOrder() && mode == Serial:
		return serialLoop{alg: alg}, nil
	case alg.IsLoopOrder():
		return parallelLoop{alg: alg}, nil
	case alg == AlgTiled && mode == Serial:
		return tiledSerial{}, nil
	case alg == AlgTiled:
		return tiledParallel{}, nil
	case alg == AlgTiledTasks && mode == Parallel:
		return tiledTasks{}, nil
	default:
		return nil, fmt.Errorf("Lookup(%v, %v): %w", alg, mode, ErrUnsupported)
	}
}

// MustLookup is Lookup for statically known pairs; it panics on error.
func MustLookup(alg Algorithm, mode Mode) Kernel {
	k, err := Lookup(alg, mode)
	if err != nil {
		panic(err)
	}
	return k
}

// All returns every registered kernel: the six serial loop orders, the six
// parallel loop orders, then TILED (serial, parallel) and TILED_TASKS.
func All() []Kernel {
	out := make([]Kernel, 0, 15)
	for _, alg := range LoopOrders() {
		out = append(out, serialLoop{alg: alg})
	}
	for _, alg := range LoopOrders() {
		out = append(out, parallelLoop{alg: alg})
	}
	return append(out, tiledSerial{}, tiledParallel{}, tiledTasks{})
}

// Name returns "<ALG>/<Mode>", e.g. "IKJ/Parallel".
func Name(k Kernel) string {
	return k.Algorithm().String() + "/" + k.Mode().String()
}
