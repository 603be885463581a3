package schema

import (
	"strconv"
	"strings"
	"time"
)

var currencyStripper = strings.NewReplacer("$", "", ",", "")

// Number parses a cell value as a number after stripping currency symbols and
// thousands separators. The second return is false for empty or non-numeric
// cells; callers exclude those from sums and denominators rather than
// treating them as zero.
func Number(v string) (float64, bool) {
	s := strings.TrimSpace(currencyStripper.Replace(v))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dateLayouts are tried in order against trimmed cell values. The set covers
// the formats observed across dataset revisions.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Date parses a cell value as a date, guessing among the known layouts.
func Date(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
