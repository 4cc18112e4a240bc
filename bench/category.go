// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"
)

// Category selects one benchmark family. Each category maps to one result
// table with a fixed column layout.
type Category int

const (
	SerialPermutations Category = iota
	ParallelPermutations
	ScalingClassic
	ScalingImproved
	Tiled
	numCategories
)

var categoryNames = [numCategories]string{
	"serial_permutations",
	"parallel_permutations",
	"serial_parallel_scaling_classic",
	"serial_parallel_scaling_improved",
	"tiled",
}

// String returns the table name of c, e.g. "serial_permutations".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return c >= 0 && c < numCategories }

// Categories returns every category in sweep order.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory maps a table name (case-insensitive) back to its Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Category(0); c < numCategories; c++ {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("ParseCategory(%q): %w", s, ErrUnknownCategory)
}

// KeyColumns returns the leading parameter columns of c's table.
func (c Category) KeyColumns() []string {
	switch c {
	case SerialPermutations:
		return []string{"MATRIX_SIZE"}
	case ParallelPermutations:
		return []string{"MATRIX_SIZE", "THREADS", "CHUNK"}
	case ScalingClassic, ScalingImproved:
		return []string{"MATRIX_SIZE", "CHUNK"}
	case Tiled:
		return []string{"MATRIX_SIZE", "THREADS", "BLOCK_SIZE"}
	default:
		return nil
	}
}
