package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

func ExampleCompare() {
	ref, _ := matrix.FromRows([][]float64{{7, 10}, {15, 22}})
	got := ref.Clone()
	_ = got.Set(1, 1, 22.0000001)

	out, _ := matrix.Compare(ref, got)
	fmt.Println(out.Pass)
	// Output: true
}
