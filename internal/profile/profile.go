// Package profile computes per-column summary statistics over tables so
// each stage of the reconciliation pipeline can be sanity-checked from
// the logs alone.
package profile

import (
	"github.com/pstrahl/DataEng/internal/pkg/logger"
	"github.com/pstrahl/DataEng/internal/table"
)

// Stats summarizes one column of a table.
type Stats struct {
	Column   string
	Type     string
	Rows     int
	Distinct int
	Missing  int
}

// Report profiles every column of t. Distinct counts unique non-missing
// values, plus one bucket for missing values when any are present, so a
// column of all nulls reports distinct=1 rather than 0.
func Report(t *table.Table) []Stats {
	stats := make([]Stats, len(t.Cols))
	for i, col := range t.Cols {
		typ := "string"
		if i < len(t.Types) {
			typ = t.Types[i]
		}
		seen := make(map[string]struct{})
		missing := 0
		for _, row := range t.Rows {
			if i >= len(row) || row[i].Null {
				missing++
				continue
			}
			seen[row[i].Value] = struct{}{}
		}
		distinct := len(seen)
		if missing > 0 {
			distinct++
		}
		stats[i] = Stats{
			Column:   col,
			Type:     typ,
			Rows:     len(t.Rows),
			Distinct: distinct,
			Missing:  missing,
		}
	}
	return stats
}

// Log profiles t and emits one INFO entry per column plus a table-level
// summary entry.
func Log(t *table.Table) {
	logger.Info("table profile",
		"table", t.Name,
		"rows", t.NumRows(),
		"columns", len(t.Cols),
	)
	for _, s := range Report(t) {
		logger.Info("column profile",
			"table", t.Name,
			"column", s.Column,
			"type", s.Type,
			"rows", s.Rows,
			"distinct", s.Distinct,
			"missing", s.Missing,
		)
	}
}
