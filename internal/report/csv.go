package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vietdv277/vpcfinder/pkg/types"
)

// Extension is appended to the base name given on the command line.
const Extension = ".csv"

// Writer appends inventory rows to a CSV stream.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
	path   string
	rows   int
}

// NewWriter writes the header to w and returns a Writer for the rows.
func NewWriter(w io.Writer) (*Writer, error) {
	rw := &Writer{csv: csv.NewWriter(w)}
	if err := rw.csv.Write(types.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return rw, nil
}

// Create creates (or truncates) path and writes the header to it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	w, err := NewWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f
	w.path = path

	return w, nil
}

// Path returns the file the writer was created on, if any.
func (w *Writer) Path() string {
	return w.path
}

// Rows returns the number of data rows written so far.
func (w *Writer) Rows() int {
	return w.rows
}

// WriteRow appends one subnet row.
func (w *Writer) WriteRow(row types.Row) error {
	if err := w.csv.Write(row.Record()); err != nil {
		return fmt.Errorf("failed to write row for %s: %w", row.SubnetID, err)
	}
	w.rows++
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes buffered rows and closes the underlying file.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		err = errors.Join(err, w.closer.Close())
		w.closer = nil
	}
	if err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	return nil
}
