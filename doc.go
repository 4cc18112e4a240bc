// Package matbench is a workbench for dense square matrix multiplication:
// how much the loop order, the thread count, the scheduling chunk and cache
// blocking change the time it takes to compute C = A × B, with every variant
// checked against a serial reference.
//
// 🚀 What is inside?
//
//	• Matrix store: contiguous row-major float64 buffers, seeded parallel fill
//	• Validator: max-abs-diff comparison within an absolute epsilon
//	• Kernels: the six loop orders, serial and parallel; a tiled kernel and
//	  two tiled parallel kernels (static partition, task queue)
//	• Runner: Cartesian sweeps, monotonic timing, speedup per configuration
//	• Report: append-only CSV tables, one per benchmark category
//
// Under the hood, everything is organized into subpackages:
//
//	matrix/      Dense, FillRandom, Compare, validators
//	workerpool/  static round-robin fork-join and a bounded drain queue
//	kernel/      loop-order and tiled kernels, Algorithm/Mode registry
//	bench/       Config, Runner, Row, Sink, host description
//	report/      CSV Table and the Writer sink
//	cmd/matbench command-line front end (serial, parallel, scaling, tiled, sweep)
//
// Quick start:
//
//	go run ./cmd/matbench tiled 1000 8 32
//	go run ./cmd/matbench sweep --config sweep.yaml --out data
package matbench
