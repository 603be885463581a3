package query

import (
	"testing"
	"time"

	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// rec is a minimal Record for exercising the engine.
type rec struct {
	id       string
	name     string
	category string
	amount   float64
	hasAmt   bool
	date     time.Time
	hasDate  bool
}

func (r *rec) SearchFields() []string { return []string{r.name, r.id, r.category} }
func (r *rec) CanonicalID() string    { return schema.CanonicalID(r.id) }
func (r *rec) CategoryValue() string  { return r.category }
func (r *rec) RangeValue() (float64, bool) {
	return r.amount, r.hasAmt
}
func (r *rec) DateValue() (time.Time, bool) {
	return r.date, r.hasDate
}
func (r *rec) DisplayName() string { return r.name }
func (r *rec) SortValue(key string) Value {
	switch key {
	case "name":
		return StringValue(r.name)
	case "amount":
		if !r.hasAmt {
			return NoValue()
		}
		return NumberValue(r.amount)
	case "date":
		if !r.hasDate {
			return NoValue()
		}
		return TimeValue(r.date)
	}
	return NoValue()
}

func amt(v float64) *rec     { return &rec{amount: v, hasAmt: true} }
func f64(v float64) *float64 { return &v }
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExactIDPromotedBeforeSort(t *testing.T) {
	// "227901" typed as a search must put that district first even under
	// name-ascending sort with alphabetically earlier entries present.
	items := []*rec{
		{id: "000001", name: "Abbott ISD"},
		{id: "'227901", name: "Austin ISD"},
		{id: "1227901", name: "Aardvark ISD"},
	}
	got, total := Apply(items, Options{Text: "227901", SortKey: "name", SortDir: Asc})
	if total != 2 {
		t.Fatalf("total = %d, want the exact and containment id matches", total)
	}
	if got[0].name != "Austin ISD" {
		t.Errorf("first = %q, want exact-id match promoted to front", got[0].name)
	}
	if got[1].name != "Aardvark ISD" {
		t.Errorf("second = %q, want the containment match after the exact one", got[1].name)
	}
}

func TestDigitNeedleMatchesIDContainment(t *testing.T) {
	items := []*rec{
		{id: "227901", name: "Austin ISD"},
		{id: "015901", name: "Alamo Heights ISD"},
	}
	got, total := Apply(items, Options{Text: "2279"})
	if total != 1 || got[0].id != "227901" {
		t.Errorf("got %d items, want the id-containment match only", total)
	}
}

func TestShortDigitNeedleIsPlainText(t *testing.T) {
	// Two digits is below the identifier threshold; it is plain substring
	// search over the text fields.
	items := []*rec{{id: "227901", name: "District 42"}}
	if _, total := Apply(items, Options{Text: "42"}); total != 1 {
		t.Errorf("total = %d, want name substring match", total)
	}
}

func TestCategoryFilterOrCombined(t *testing.T) {
	items := []*rec{
		{name: "a", category: "Instruction"},
		{name: "b", category: "Facilities"},
		{name: "c", category: "Transportation"},
	}
	_, total := Apply(items, Options{Categories: []string{"Instruction", "Facilities"}})
	if total != 2 {
		t.Errorf("total = %d, want OR-combined categories", total)
	}
}

func TestNumericRangeInclusive(t *testing.T) {
	items := []*rec{amt(10), amt(20), amt(30)}
	_, total := Apply(items, Options{MinValue: f64(10), MaxValue: f64(20)})
	if total != 2 {
		t.Errorf("total = %d, want inclusive bounds", total)
	}

	// Absent bound leaves that side unbounded.
	_, total = Apply(items, Options{MinValue: f64(20)})
	if total != 2 {
		t.Errorf("total = %d, want open upper bound", total)
	}
}

func TestDateRangeEndOfDay(t *testing.T) {
	items := []*rec{
		{name: "in", date: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), hasDate: true},
		{name: "out", date: time.Date(2024, 2, 1, 0, 0, 1, 0, time.UTC), hasDate: true},
		{name: "undated"},
	}
	from := day(2024, 1, 1)
	to := day(2024, 1, 31)
	got, total := Apply(items, Options{From: &from, To: &to})
	if total != 1 || got[0].name != "in" {
		t.Errorf("got %d rows, want late-on-the-31st row included and 02-01 row excluded", total)
	}
}

func TestUndatedExcludedOnceDateFilterActive(t *testing.T) {
	items := []*rec{{name: "undated"}}
	from := day(2024, 1, 1)
	if _, total := Apply(items, Options{From: &from}); total != 0 {
		t.Error("rows without a parseable date must drop out when a date filter is set")
	}
}

func TestSortStableWithNameTiebreak(t *testing.T) {
	items := []*rec{
		{name: "b", amount: 5, hasAmt: true},
		{name: "a", amount: 5, hasAmt: true},
		{name: "c", amount: 1, hasAmt: true},
	}
	got, _ := Apply(items, Options{SortKey: "amount", SortDir: Desc})
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got[i].name != w {
			t.Fatalf("order = [%s %s %s], want %v", got[0].name, got[1].name, got[2].name, want)
		}
	}
}

func TestMissingSortValueSinks(t *testing.T) {
	items := []*rec{
		{name: "novalue"},
		{name: "valued", amount: 1, hasAmt: true},
	}
	got, _ := Apply(items, Options{SortKey: "amount", SortDir: Desc})
	if got[len(got)-1].name != "novalue" {
		t.Error("records missing the sort key should sort last in either direction")
	}
	got, _ = Apply(items, Options{SortKey: "amount", SortDir: Asc})
	if got[len(got)-1].name != "novalue" {
		t.Error("records missing the sort key should sort last in either direction")
	}
}

func TestPaginationSlicesSortedWhole(t *testing.T) {
	var items []*rec
	for _, n := range []string{"d", "b", "e", "a", "c"} {
		items = append(items, &rec{name: n})
	}
	opts := Options{SortKey: "name", SortDir: Asc, PageSize: 2}

	opts.Page = 2
	got, total := Apply(items, opts)
	if total != 5 {
		t.Fatalf("total = %d, want full filtered count", total)
	}
	if len(got) != 2 || got[0].name != "c" || got[1].name != "d" {
		t.Errorf("page 2 = %v, want [c d]", names(got))
	}

	// Page past the end is empty, not an error.
	opts.Page = 9
	got, total = Apply(items, opts)
	if len(got) != 0 || total != 5 {
		t.Errorf("out-of-range page = %v (total %d), want empty slice", names(got), total)
	}
}

func names(rs []*rec) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.name
	}
	return out
}
