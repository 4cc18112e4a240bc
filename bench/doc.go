// Package bench drives the multiplication benchmark: it sweeps matrix sizes,
// thread counts, chunk sizes and block sizes, times every kernel variant with
// a monotonic clock, validates each output against a reference kernel, and
// hands one aggregated Row per configuration to a Sink.
//
// ⚙️ Categories:
//
//	SerialPermutations    six serial loop orders, reference serial IJK
//	ParallelPermutations  six parallel loop orders per (threads, chunk),
//	                      reference serial IJK
//	ScalingClassic        serial IJK vs parallel IJK at 2, 4, 8 threads
//	ScalingImproved       serial IKJ vs parallel IKJ at 2, 4, 8 threads
//	Tiled                 serial/parallel IKJ vs the three blocked kernels,
//	                      reference serial IKJ
//
// Speedup is reference_time / candidate_time. A candidate whose output
// differs from the reference by more than epsilon is recorded as invalid and
// logged; the sweep goes on.
//
// Usage:
//
//	r, err := bench.New(bench.DefaultConfig(), sink, bench.WithLogger(logger))
//	if err != nil { … }
//	err = r.RunAll()
package bench
