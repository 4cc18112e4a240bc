// Package report persists benchmark rows as append-only CSV tables.
//
// One Table per bench.Category lives at <dir>/<category>.csv. A table's header
// is written only when its file is empty, so repeated runs accumulate rows in
// the same file. Every row is written and flushed on its own; a failure
// mid-sweep leaves all earlier rows intact.
//
// Writer adapts the tables to bench.Sink and chooses which metric a cell
// carries: the speedup against the category's reference kernel (default) or
// the raw elapsed seconds.
package report
