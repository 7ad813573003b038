// Package table holds a small in-memory tabular record set used as the
// common currency between CSV files, the column profiler, and the typed
// decoders of the reconciliation pipeline. Tables are immutable by
// convention: operations that derive data return a new Table.
package table

import "strings"

// Cell is a single tabular value. Null marks a missing value; Value is
// meaningless when Null is set.
type Cell struct {
	Value string
	Null  bool
}

// Table is an in-memory record set with named, typed columns. Raw tables
// read from CSV declare every column as "string"; typed record sets
// project themselves into tables with their real column types for
// profiling and output.
type Table struct {
	Name  string
	Cols  []string
	Types []string
	Rows  [][]Cell
}

// New returns an empty table with the given column names. Types defaults
// to "string" per column when nil; otherwise it must be the same length
// as cols.
func New(name string, cols []string, types []string) *Table {
	if types == nil {
		types = make([]string, len(cols))
		for i := range types {
			types[i] = "string"
		}
	}
	return &Table{Name: name, Cols: cols, Types: types}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// ColumnIndex resolves a column name to its index. The match is
// case-insensitive on trimmed names, tolerating header cells with stray
// whitespace or casing from hand-exported CSVs.
func (t *Table) ColumnIndex(name string) (int, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, c := range t.Cols {
		if strings.ToLower(strings.TrimSpace(c)) == want {
			return i, true
		}
	}
	return 0, false
}

// Head returns a copy of the table truncated to at most n rows, used for
// debug previews. Negative n yields an empty preview.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	out := New(t.Name, t.Cols, t.Types)
	out.Rows = make([][]Cell, n)
	for i := 0; i < n; i++ {
		row := make([]Cell, len(t.Rows[i]))
		copy(row, t.Rows[i])
		out.Rows[i] = row
	}
	return out
}

// missingTokens are the cell values treated as missing on read, matching
// the NA conventions of the CRM exports this tool ingests.
var missingTokens = map[string]bool{
	"":     true,
	"NULL": true,
	"null": true,
	"NaN":  true,
	"nan":  true,
	"N/A":  true,
	"n/a":  true,
	"NA":   true,
	"None": true,
}

// IsMissing reports whether a raw cell value denotes a missing value.
func IsMissing(v string) bool {
	return missingTokens[strings.TrimSpace(v)]
}
