// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig is returned by Config.Validate and New for an unusable sweep.
	ErrBadConfig = errors.New("bench: invalid configuration")

	// ErrNilSink is returned by New when no Sink is supplied.
	ErrNilSink = errors.New("bench: nil sink")

	// ErrUnknownCategory is returned for a Category outside the closed set.
	ErrUnknownCategory = errors.New("bench: unknown category")
)

// benchErrorf prefixes err with a call-site tag while preserving errors.Is.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
