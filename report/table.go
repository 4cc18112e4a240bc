// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Table is one append-only CSV file with a fixed header.
type Table struct {
	Name     string
	Filename string
	Header   []string
}

// NewTable returns the table name at dir/name.csv.
func NewTable(dir, name string, header []string) Table {
	return Table{
		Name:     name,
		Filename: filepath.Join(dir, name+".csv"),
		Header:   slices.Clone(header),
	}
}

// Append writes record as one line, creating the parent directory and the
// file as needed. The header goes first when the file is empty; when the
// file already has a header it must equal t.Header.
//
// Errors:
//   - ErrRecordWidth when len(record) != len(t.Header).
//   - ErrHeaderMismatch when the existing header differs.
//   - any I/O error, wrapped with the file path.
func (t Table) Append(record []string) error {
	if len(record) != len(t.Header) {
		return reportErrorf(t.Filename, ErrRecordWidth)
	}
	if err := os.MkdirAll(filepath.Dir(t.Filename), 0o755); err != nil {
		return reportErrorf(t.Filename, err)
	}

	f, err := os.OpenFile(t.Filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return reportErrorf(t.Filename, err)
	}
	if err = t.write(f, record); err != nil {
		_ = f.Close()
		return reportErrorf(t.Filename, err)
	}
	if err = f.Close(); err != nil {
		return reportErrorf(t.Filename, err)
	}
	return nil
}

// write emits the header (only into an empty file) and record, then flushes.
func (t Table) write(f *os.File, record []string) error {
	empty, err := t.checkHeader(f)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if empty {
		if err = w.Write(t.Header); err != nil {
			return err
		}
	}
	if err = w.Write(record); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// checkHeader reports whether f is empty and, if it is not, whether its first
// line is t.Header.
func (t Table) checkHeader(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}

	r := csv.NewReader(io.NewSectionReader(f, 0, info.Size()))
	r.FieldsPerRecord = -1
	got, err := r.Read()
	if err != nil {
		return false, err
	}
	if !slices.Equal(got, t.Header) {
		return false, ErrHeaderMismatch
	}
	return false, nil
}

// Read returns every data row of the table, header excluded. A missing file
// reads as no rows.
func (t Table) Read() ([][]string, error) {
	f, err := os.Open(t.Filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, reportErrorf(t.Filename, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, reportErrorf(t.Filename, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// Clear removes the table file. A missing file is not an error.
func (t Table) Clear() error {
	if err := os.Remove(t.Filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return reportErrorf(t.Filename, err)
	}
	return nil
}
