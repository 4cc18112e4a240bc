// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderMismatch is returned when an existing table was written with a
	// different column layout than the row being appended.
	ErrHeaderMismatch = errors.New("report: header mismatch")

	// ErrRecordWidth is returned when a record does not match the header width.
	ErrRecordWidth = errors.New("report: record width differs from header")

	// ErrUnknownMetric is returned by ParseMetric.
	ErrUnknownMetric = errors.New("report: unknown metric")
)

// reportErrorf prefixes err with the table path.
func reportErrorf(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
