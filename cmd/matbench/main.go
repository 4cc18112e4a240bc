// Command matbench benchmarks dense square matrix multiplication across loop
// orders, thread counts, chunk sizes and block sizes, and appends the
// speedups to CSV tables.
//
// Usage:
//
//	matbench serial   <size> <threads> <chunk>
//	matbench parallel <size> <threads> <chunk>
//	matbench scaling  <size> <threads> <chunk>
//	matbench tiled    <size> <threads> <block>
//	matbench sweep    [--config sweep.yaml]
//	matbench kernels
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
