// SPDX-License-Identifier: MIT

package bench

import (
	"io"
	"log/slog"
)

const (
	panicLoggerNil = "bench: WithLogger: logger must be non-nil"
	panicTimerNil  = "bench: WithTimer: timer must be non-nil"
)

// Option configures a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	logger *slog.Logger // discard
	timer  Timer        // Measure
	host   Host         // DescribeHost()
}

// WithLogger routes run progress to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}
	return func(o *runnerOptions) { o.logger = logger }
}

// WithTimer replaces the wall-clock Timer, e.g. with a fake in tests.
// Panics on nil.
func WithTimer(t Timer) Option {
	if t == nil {
		panic(panicTimerNil)
	}
	return func(o *runnerOptions) { o.timer = t }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) runnerOptions {
	o := runnerOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		timer:  Measure,
		host:   DescribeHost(),
	}
	for _, opt := range user {
		opt(&o)
	}
	return o
}
