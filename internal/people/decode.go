package people

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pstrahl/DataEng/internal/table"
)

// ErrMissingColumn reports an export missing one of the columns the
// pipeline narrows to.
var ErrMissingColumn = errors.New("missing column")

// errMissingValue reports a null cell in a column that requires a value.
var errMissingValue = errors.New("missing value")

// rowError locates a decode failure by table, 1-based data row, and
// column, so a bad export line can be found without a stack trace.
func rowError(t *table.Table, row int, col string, err error) error {
	return fmt.Errorf("%s row %d: %s: %w", t.Name, row+1, col, err)
}

func columnIndex(t *table.Table, name string) (int, error) {
	i, ok := t.ColumnIndex(name)
	if !ok {
		return 0, fmt.Errorf("%s: %w %q", t.Name, ErrMissingColumn, name)
	}
	return i, nil
}

func at(row []table.Cell, i int) table.Cell {
	if i >= len(row) {
		return table.Cell{Null: true}
	}
	return row[i]
}

// parseID parses an integer identifier, tolerating the ".0" suffix that
// spreadsheet round-trips leave on numeric columns.
func parseID(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, '.'); i >= 0 {
		frac := v[i+1:]
		if frac != "" && strings.Trim(frac, "0") == "" {
			v = v[:i]
		}
	}
	return strconv.ParseInt(v, 10, 64)
}

// parseFlag parses a boolean flag column. The exports encode flags as
// 0/1; hand-edited files show true/false as well.
func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag value %q", v)
}

func requiredID(t *table.Table, row int, col string, c table.Cell) (int64, error) {
	if c.Null {
		return 0, rowError(t, row, col, errMissingValue)
	}
	id, err := parseID(c.Value)
	if err != nil {
		return 0, rowError(t, row, col, err)
	}
	return id, nil
}

func requiredDate(t *table.Table, row int, col string, c table.Cell) (time.Time, error) {
	if c.Null {
		return time.Time{}, rowError(t, row, col, errMissingValue)
	}
	ts, err := ParseSourceDate(c.Value)
	if err != nil {
		return time.Time{}, rowError(t, row, col, err)
	}
	return ts, nil
}

func optionalDate(t *table.Table, row int, col string, c table.Cell) (*time.Time, error) {
	if c.Null {
		return nil, nil
	}
	ts, err := ParseSourceDate(c.Value)
	if err != nil {
		return nil, rowError(t, row, col, err)
	}
	return &ts, nil
}

// stringCell returns a trimmed cell value, with null mapped to the empty
// string; downstream treats empty as missing for free-text columns.
func stringCell(c table.Cell) string {
	if c.Null {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// DecodeConstituents narrows the constituents export to the
// reconciliation columns and types every row. The export carries many
// more columns; everything outside the narrow set is ignored.
func DecodeConstituents(t *table.Table) (Constituents, error) {
	idIdx, err := columnIndex(t, "cons_id")
	if err != nil {
		return nil, err
	}
	srcIdx, err := columnIndex(t, "source")
	if err != nil {
		return nil, err
	}
	createIdx, err := columnIndex(t, "create_dt")
	if err != nil {
		return nil, err
	}
	modIdx, err := columnIndex(t, "modified_dt")
	if err != nil {
		return nil, err
	}

	out := make(Constituents, 0, len(t.Rows))
	for i, row := range t.Rows {
		c := Constituent{Source: stringCell(at(row, srcIdx))}
		if c.ID, err = requiredID(t, i, "cons_id", at(row, idIdx)); err != nil {
			return nil, err
		}
		if c.Created, err = requiredDate(t, i, "create_dt", at(row, createIdx)); err != nil {
			return nil, err
		}
		if c.Modified, err = requiredDate(t, i, "modified_dt", at(row, modIdx)); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// DecodePrimaryEmails narrows the email export to the reconciliation
// columns and types every row, primary or not.
func DecodePrimaryEmails(t *table.Table) (PrimaryEmails, error) {
	emailIDIdx, err := columnIndex(t, "cons_email_id")
	if err != nil {
		return nil, err
	}
	consIDIdx, err := columnIndex(t, "cons_id")
	if err != nil {
		return nil, err
	}
	primaryIdx, err := columnIndex(t, "is_primary")
	if err != nil {
		return nil, err
	}
	emailIdx, err := columnIndex(t, "email")
	if err != nil {
		return nil, err
	}
	createIdx, err := columnIndex(t, "create_dt")
	if err != nil {
		return nil, err
	}
	modIdx, err := columnIndex(t, "modified_dt")
	if err != nil {
		return nil, err
	}

	out := make(PrimaryEmails, 0, len(t.Rows))
	for i, row := range t.Rows {
		e := PrimaryEmail{Email: stringCell(at(row, emailIdx))}
		if e.EmailID, err = requiredID(t, i, "cons_email_id", at(row, emailIDIdx)); err != nil {
			return nil, err
		}
		if e.ConsID, err = requiredID(t, i, "cons_id", at(row, consIDIdx)); err != nil {
			return nil, err
		}
		flag := at(row, primaryIdx)
		if flag.Null {
			return nil, rowError(t, i, "is_primary", errMissingValue)
		}
		if e.IsPrimary, err = parseFlag(flag.Value); err != nil {
			return nil, rowError(t, i, "is_primary", err)
		}
		if e.Created, err = requiredDate(t, i, "create_dt", at(row, createIdx)); err != nil {
			return nil, err
		}
		if e.Modified, err = requiredDate(t, i, "modified_dt", at(row, modIdx)); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// DecodeSubscriptions narrows the chapter subscription export and types
// every row. Only the owning email id is required; chapter, flag, and
// timestamps may all be missing in the source.
func DecodeSubscriptions(t *table.Table) (ChapterSubscriptions, error) {
	emailIDIdx, err := columnIndex(t, "cons_email_id")
	if err != nil {
		return nil, err
	}
	chapterIdx, err := columnIndex(t, "chapter_id")
	if err != nil {
		return nil, err
	}
	unsubIdx, err := columnIndex(t, "isunsub")
	if err != nil {
		return nil, err
	}
	unsubAtIdx, err := columnIndex(t, "unsub_dt")
	if err != nil {
		return nil, err
	}
	modIdx, err := columnIndex(t, "modified_dt")
	if err != nil {
		return nil, err
	}

	out := make(ChapterSubscriptions, 0, len(t.Rows))
	for i, row := range t.Rows {
		var s ChapterSubscription
		if s.EmailID, err = requiredID(t, i, "cons_email_id", at(row, emailIDIdx)); err != nil {
			return nil, err
		}
		if c := at(row, chapterIdx); !c.Null {
			id, err := parseID(c.Value)
			if err != nil {
				return nil, rowError(t, i, "chapter_id", err)
			}
			s.ChapterID = &id
		}
		if c := at(row, unsubIdx); !c.Null {
			unsub, err := parseFlag(c.Value)
			if err != nil {
				return nil, rowError(t, i, "isunsub", err)
			}
			s.Unsub = &unsub
		}
		if s.UnsubAt, err = optionalDate(t, i, "unsub_dt", at(row, unsubAtIdx)); err != nil {
			return nil, err
		}
		if s.Modified, err = optionalDate(t, i, "modified_dt", at(row, modIdx)); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
