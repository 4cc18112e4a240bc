// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/matbench/matrix"
)

var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside the closed set
	// or a name ParseAlgorithm does not recognise.
	ErrUnknownAlgorithm = errors.New("kernel: unknown algorithm")

	// ErrUnknownMode is returned for a Mode other than Serial or Parallel.
	ErrUnknownMode = errors.New("kernel: unknown mode")

	// ErrUnsupported is returned when an Algorithm has no kernel for the
	// requested Mode (TILED_TASKS is parallel only).
	ErrUnsupported = errors.New("kernel: algorithm not available in this mode")
)

// Algorithm identifies a multiplication kernel independent of its mode.
type Algorithm int

const (
	AlgIJK Algorithm = iota
	AlgIKJ
	AlgJIK
	AlgJKI
	AlgKIJ
	AlgKJI
	AlgTiled
	AlgTiledTasks

	numAlgorithms // sentinel, keep last
)

var algorithmNames = [numAlgorithms]string{
	AlgIJK:        "IJK",
	AlgIKJ:        "IKJ",
	AlgJIK:        "JIK",
	AlgJKI:        "JKI",
	AlgKIJ:        "KIJ",
	AlgKJI:        "KJI",
	AlgTiled:      "TILED",
	AlgTiledTasks: "TILED_TASKS",
}

// String returns the upper-case tag used in CSV headers and logs.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a is a member of the closed set.
func (a Algorithm) Valid() bool { return a >= 0 && a < numAlgorithms }

// IsLoopOrder reports whether a is one of the six loop permutations.
func (a Algorithm) IsLoopOrder() bool { return a >= AlgIJK && a <= AlgKJI }

// ParseAlgorithm maps a case-insensitive tag ("ikj", "TILED_TASKS") to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for a, name := range algorithmNames {
		if name == up {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// LoopOrders returns the six loop permutations in canonical order
// (IJK, IKJ, JIK, JKI, KIJ, KJI).
func LoopOrders() []Algorithm {
	return []Algorithm{AlgIJK, AlgIKJ, AlgJIK, AlgJKI, AlgKIJ, AlgKJI}
}

// Mode is the execution mode of a kernel.
type Mode int

const (
	Serial Mode = iota
	Parallel
)

// String returns "Serial" or "Parallel".
func (m Mode) String() string {
	switch m {
	case Serial:
		return "Serial"
	case Parallel:
		return "Parallel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Params carries the tuning knobs of one invocation. Kernels ignore the
// fields they do not use (serial loops ignore all three).
//
//   - Threads: worker count; < 1 means 1.
//   - Chunk:   outer-loop iterations per scheduling unit; < 1 means
//     ceil(size/Threads). Only the parallel loop orders read it; the
//     tiled kernels schedule whole tiles.
//   - Block:   tile edge length; < 1 means a single tile covering the matrix.
type Params struct {
	Threads int
	Chunk   int
	Block   int
}

// Kernel is one (Algorithm, Mode) variant.
type Kernel interface {
	Algorithm() Algorithm
	Mode() Mode
	// Multiply computes c = a × b. It is a no-op when the operands violate
	// the package contract.
	Multiply(a, b, c *matrix.Dense, p Params)
}

// ready is the shared precondition guard: equal, non-nil sizes and an output
// that aliases neither input.
func ready(a, b, c *matrix.Dense) bool {
	return matrix.SameSize(a, b, c) && c != a && c != b
}
