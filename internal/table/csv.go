package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoHeader is returned when a CSV input has no header row at all.
var ErrNoHeader = errors.New("csv input has no header row")

// ReadFile loads a CSV file into a table named name. The first row is the
// header; every column is typed "string". Cells matching the missing-value
// tokens are marked Null.
func ReadFile(path, name string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV from r into a table. The reader tolerates a UTF-8 BOM,
// lazy quoting, and ragged rows: short rows are padded with nulls and long
// rows are truncated to the header width.
func Read(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	t := New(name, cols, nil)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		row := make([]Cell, len(cols))
		for i := range row {
			if i >= len(record) {
				row[i] = Cell{Null: true}
				continue
			}
			if IsMissing(record[i]) {
				row[i] = Cell{Null: true}
				continue
			}
			row[i] = Cell{Value: record[i]}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// stripBOM wraps a reader to strip a UTF-8 BOM if present.
func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil || n < 3 {
		return io.MultiReader(strings.NewReader(string(buf[:n])), r)
	}
	if buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(buf[:n])), r)
}

// WriteOptions controls CSV rendering.
type WriteOptions struct {
	// Index prepends an unnamed positional column counting rows from 0.
	Index bool
	// NullToken is written in place of null cells.
	NullToken string
}

// WriteFile renders the table as CSV at path, creating or truncating it.
func (t *Table) WriteFile(path string, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.Write(f, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Write renders the table as CSV to w.
func (t *Table) Write(w io.Writer, opts WriteOptions) error {
	cw := csv.NewWriter(w)

	header := t.Cols
	if opts.Index {
		header = append([]string{""}, t.Cols...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, 0, len(header))
	for i, row := range t.Rows {
		record = record[:0]
		if opts.Index {
			record = append(record, strconv.Itoa(i))
		}
		for _, cell := range row {
			if cell.Null {
				record = append(record, opts.NullToken)
				continue
			}
			record = append(record, cell.Value)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
