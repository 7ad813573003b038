package people

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadDate reports a date value that matched none of the export
// layouts after weekday stripping.
var ErrBadDate = errors.New("unrecognized date")

// sourceDateLayouts are the residual timestamp shapes observed in the
// CRM exports once the weekday token is removed, tried in order.
var sourceDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 02 2006",
	"Jan 2 2006",
	"January 02 2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseSourceDate parses a timestamp as the exports write them.
// Examples: "Mon, Jan 01 2020", "Wed, 2020-09-16 18:01:07", "2020-09-16".
// A leading 3-letter weekday token ("Mon, ") is discarded when present;
// the remainder must match one of the known layouts.
func ParseSourceDate(s string) (time.Time, error) {
	v := strings.TrimSpace(stripWeekday(strings.TrimSpace(s)))
	if v == "" {
		return time.Time{}, fmt.Errorf("%w %q", ErrBadDate, s)
	}

	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w %q", ErrBadDate, s)
}

// stripWeekday removes a "Mon," style prefix. Only the shape is checked,
// not the spelling, so uppercase or non-English weekday abbreviations
// still strip cleanly.
func stripWeekday(v string) string {
	if len(v) >= 4 && v[3] == ',' && isLetters(v[:3]) {
		return v[4:]
	}
	return v
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
