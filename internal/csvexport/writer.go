package csvexport

import (
	"bytes"
	"encoding/csv"
	"io"

	"interviewdesk/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer wraps csv.Writer for exporting parsed tables as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteTable writes the header row followed by every data row in order and
// flushes the output.
func (w *Writer) WriteTable(table *domain.ParsedTable) error {
	if table == nil || len(table.Header) == 0 {
		return domain.ErrInvalidTable
	}
	return w.csv.WriteAll(table.Records())
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// Export renders table as CSV bytes, optionally prefixed with a UTF-8 BOM.
func Export(table *domain.ParsedTable, withBOM bool) ([]byte, error) {
	var buf bytes.Buffer
	if withBOM {
		buf.Write(BOM)
	}
	w := NewWriter(&buf)
	if err := w.WriteTable(table); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
