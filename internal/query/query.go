// Package query applies free-text search, categorical and range filters, and
// multi-mode sorting to in-memory entity collections, then paginates the
// result. Everything here is pure: no I/O, no mutation of the input slice.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ValueKind tags the type of a sort value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindString
	KindNumber
	KindTime
)

// Value is a single sortable value extracted from a record.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Time time.Time
}

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func TimeValue(t time.Time) Value { return Value{Kind: KindTime, Time: t} }
func NoValue() Value              { return Value{Kind: KindNone} }

// Record is what the engine needs from an entity. Entities implement this
// directly; the engine never reaches into raw rows.
type Record interface {
	// SearchFields returns the values text search matches against.
	SearchFields() []string
	// CanonicalID returns the entity's canonical identifier.
	CanonicalID() string
	// CategoryValue returns the value the category filter tests.
	CategoryValue() string
	// RangeValue returns the value the numeric range filter tests.
	RangeValue() (float64, bool)
	// DateValue returns the value the date range filter tests.
	DateValue() (time.Time, bool)
	// DisplayName is the tie-break sort key.
	DisplayName() string
	// SortValue returns the value for a named sort key; NoValue for an
	// unknown key sorts the record by name.
	SortValue(key string) Value
}

// Options describes one query over a collection.
type Options struct {
	Text       string
	Categories []string
	MinValue   *float64
	MaxValue   *float64
	From       *time.Time
	To         *time.Time
	SortKey    string
	SortDir    Order
	Page       int
	PageSize   int
}

// minDigitNeedle is the shortest all-digit search string treated as an
// identifier lookup rather than plain text.
const minDigitNeedle = 3

// Apply filters, sorts, and paginates items. The returned slice is a page of
// the result; total is the filtered count before pagination.
//
// A search string of three or more digits is treated as an identifier:
// matching tests id containment before name containment, and records whose
// canonical id equals the needle exactly are promoted to the very front of
// the result, ahead of whatever order the sort would give them.
func Apply[T Record](items []T, opts Options) (page []T, total int) {
	needle := strings.TrimSpace(opts.Text)
	idNeedle := isDigitNeedle(needle)
	canonNeedle := ""
	if idNeedle {
		canonNeedle = schema.CanonicalID(needle)
	}

	var exact []T
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !matches(it, needle, idNeedle, opts) {
			continue
		}
		if idNeedle && it.CanonicalID() == canonNeedle {
			exact = append(exact, it)
			continue
		}
		kept = append(kept, it)
	}

	sortRecords(kept, opts.SortKey, opts.SortDir)

	// Exact-id matches go first in their source order, before the sorted
	// remainder; the sort never reorders them behind anything.
	result := append(exact, kept...)
	total = len(result)

	pageNum := opts.Page
	if pageNum < 1 {
		pageNum = 1
	}
	size := opts.PageSize
	if size < 1 {
		return result, total
	}
	start := (pageNum - 1) * size
	if start >= total {
		return nil, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return result[start:end], total
}

func isDigitNeedle(s string) bool {
	if len(s) < minDigitNeedle {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func matches[T Record](it T, needle string, idNeedle bool, opts Options) bool {
	if needle != "" {
		lower := strings.ToLower(needle)
		hit := false
		if idNeedle && strings.Contains(it.CanonicalID(), needle) {
			hit = true
		}
		if !hit {
			for _, f := range it.SearchFields() {
				if strings.Contains(strings.ToLower(f), lower) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if len(opts.Categories) > 0 {
		cat := it.CategoryValue()
		found := false
		for _, c := range opts.Categories {
			if c == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if opts.MinValue != nil || opts.MaxValue != nil {
		v, ok := it.RangeValue()
		if !ok {
			return false
		}
		if opts.MinValue != nil && v < *opts.MinValue {
			return false
		}
		if opts.MaxValue != nil && v > *opts.MaxValue {
			return false
		}
	}

	if opts.From != nil || opts.To != nil {
		d, ok := it.DateValue()
		if !ok {
			// Records without a parseable date drop out once any date
			// filter is active.
			return false
		}
		if opts.From != nil && d.Before(*opts.From) {
			return false
		}
		if opts.To != nil {
			end := endOfDay(*opts.To)
			if d.After(end) {
				return false
			}
		}
	}

	return true
}

// endOfDay extends an inclusive upper bound to 23:59:59.999 of that day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}

func sortRecords[T Record](items []T, key string, dir Order) {
	coll := collate.New(language.English, collate.IgnoreCase)
	sign := 1
	if dir == Desc {
		sign = -1
	}

	sort.SliceStable(items, func(i, j int) bool {
		va, vb := items[i].SortValue(key), items[j].SortValue(key)
		c := compare(coll, va, vb)
		if va.Kind != KindNone && vb.Kind != KindNone {
			c *= sign
		}
		if c != 0 {
			return c < 0
		}
		// Ties fall back to name ascending regardless of direction.
		return coll.CompareString(items[i].DisplayName(), items[j].DisplayName()) < 0
	})
}

// compare orders two sort values. Missing values sort after present ones so
// that rows lacking the key sink to the end in either direction.
func compare(coll *collate.Collator, a, b Value) int {
	if a.Kind == KindNone || b.Kind == KindNone {
		if a.Kind == b.Kind {
			return 0
		}
		if a.Kind == KindNone {
			return 1
		}
		return -1
	}
	switch a.Kind {
	case KindNumber:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	case KindTime:
		switch {
		case a.Time.Before(b.Time):
			return -1
		case a.Time.After(b.Time):
			return 1
		}
		return 0
	default:
		return coll.CompareString(a.Str, b.Str)
	}
}
