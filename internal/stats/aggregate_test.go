package stats

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/index"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestAggregateEmptyTable(t *testing.T) {
	got := Aggregate(nil, schema.FieldMap{})
	if got.TotalSpending != 0 || got.TeacherSalaryAvg != 0 {
		t.Errorf("empty table must aggregate to zeros, got %+v", got)
	}
	if got.PerStudentSpending != FixedPerStudentSpending {
		t.Errorf("per-student spending = %d, want the fixed constant", got.PerStudentSpending)
	}
}

func TestAggregateCurrencyCells(t *testing.T) {
	fields := schema.FieldMap{
		schema.TotalSpending: "Total Spending",
		schema.TeacherSalary: "Average Teacher Salary",
	}
	rows := []dataset.Row{
		{"Total Spending": "$1,234", "Average Teacher Salary": "$50,000"},
		{"Total Spending": "766", "Average Teacher Salary": ""},
		{"Total Spending": "n/a", "Average Teacher Salary": "$60,001"},
	}
	got := Aggregate(rows, fields)

	if got.TotalSpending != 2000 {
		t.Errorf("TotalSpending = %v, want 2000 ($1,234 + 766, junk excluded)", got.TotalSpending)
	}
	// Mean over the two parseable salaries only, rounded.
	if got.TeacherSalaryAvg != 55001 {
		t.Errorf("TeacherSalaryAvg = %d, want 55001", got.TeacherSalaryAvg)
	}
}

func TestAggregateAllCellsUnparseable(t *testing.T) {
	fields := schema.FieldMap{schema.PerPupilDebt: "Per-Pupil Debt"}
	rows := []dataset.Row{{"Per-Pupil Debt": ""}, {"Per-Pupil Debt": "unknown"}}
	got := Aggregate(rows, fields)
	if got.PerPupilDebtAvg != 0 {
		t.Errorf("PerPupilDebtAvg = %d, want 0 (not NaN) when nothing parses", got.PerPupilDebtAvg)
	}
}

func TestAggregateUndetectedField(t *testing.T) {
	rows := []dataset.Row{{"X": "5"}}
	got := Aggregate(rows, schema.FieldMap{})
	if got.TotalSpending != 0 {
		t.Errorf("undetected field must contribute 0, got %v", got.TotalSpending)
	}
}

// End-to-end over the real pipeline: parse, resolve, index, aggregate.
func TestCSVThroughAggregation(t *testing.T) {
	csv := "USER_District_Number,Enrollment\n'015901,\"1,000\"\n"
	tbl := dataset.DecodeCSV(strings.NewReader(csv), discard())

	fields := schema.ResolveAll(tbl.Headers, schema.Specs{
		schema.DistrictID: schema.CampusSpecs[schema.CampusDistrictID],
		schema.Enrollment: schema.DistrictSpecs[schema.Enrollment],
	})
	if fields.Header(schema.DistrictID) != "USER_District_Number" {
		t.Fatalf("DISTRICT_ID resolved to %q", fields.Header(schema.DistrictID))
	}

	got := Aggregate(tbl.Rows, fields)
	if got.Enrollment != 1000 {
		t.Errorf("Enrollment = %v, want 1000", got.Enrollment)
	}

	idx := index.Build(tbl.Rows, fields.Header(schema.DistrictID), "", discard())
	row, ok := idx.ByID["15901"]
	if !ok {
		t.Fatal("ByID[15901] missing")
	}
	if row["USER_District_Number"] != "'015901" {
		t.Errorf("indexed row = %v", row)
	}
}
