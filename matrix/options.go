// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random fill and validation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Compare. It absorbs the
	// rounding differences between loop orders that sum in a different order.
	DefaultEpsilon = 1e-6

	// DefaultMin and DefaultMax bound the uniform distribution of FillRandom.
	DefaultMin = -10.0
	DefaultMax = 10.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRangeInvalid   = "matrix: WithRange: bounds must be finite with min <= max"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	min     float64 // DefaultMin
	max     float64 // DefaultMax
	workers int     // > 0; runtime.GOMAXPROCS(0)
}

// WithEpsilon sets the absolute tolerance used by Compare.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRange sets the closed interval [min, max] sampled by FillRandom.
// Panics when a bound is not finite or min > max.
func WithRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.min = min
		o.max = max
	}
}

// WithWorkers sets the number of fill workers (and therefore RNG streams).
// The same seed with the same worker count always yields the same matrix.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// NewOptions resolves opts on top of the defaults. Exposed for callers that
// want to inspect the effective configuration (e.g. to log it).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Range returns the effective [min, max] interval.
func (o Options) Range() (float64, float64) { return o.min, o.max }

// Workers returns the effective fill worker count.
func (o Options) Workers() int { return o.workers }

// gatherOptions applies user-provided setters on top of defaults, in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		min:     DefaultMin,
		max:     DefaultMax,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
