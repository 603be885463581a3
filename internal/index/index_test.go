package index

import (
	"log/slog"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestBuildByID(t *testing.T) {
	rows := []dataset.Row{
		{"DISTRICT_N": "'015901", "NAME": "Alamo Heights ISD"},
		{"DISTRICT_N": "227901", "NAME": "Austin ISD"},
		{"DISTRICT_N": "", "NAME": "no id"},
	}
	idx := Build(rows, "DISTRICT_N", "", discard())

	got, ok := idx.ByID["15901"]
	if !ok || got["NAME"] != "Alamo Heights ISD" {
		t.Fatalf("ByID[15901] = %v", got)
	}
	// The stored row's own id canonicalizes back to the lookup key.
	if schema.CanonicalID(got["DISTRICT_N"]) != "15901" {
		t.Error("stored row id does not canonicalize to its key")
	}
	if len(idx.ByID) != 2 {
		t.Errorf("len(ByID) = %d, rows with empty id must be excluded", len(idx.ByID))
	}
}

func TestBuildByIDLastWriterWins(t *testing.T) {
	rows := []dataset.Row{
		{"ID": "015901", "NAME": "first"},
		{"ID": "15901", "NAME": "second"},
	}
	idx := Build(rows, "ID", "", discard())
	if got := idx.ByID["15901"]["NAME"]; got != "second" {
		t.Errorf("ByID = %q, want later row to win", got)
	}
}

func TestBuildByParentGroupsVariantIDs(t *testing.T) {
	// "015901" and "15901" are the same district; both campuses land in one
	// bucket, in source order.
	rows := []dataset.Row{
		{"CAMPUS_ID": "1", "USER_District_Number": "015901"},
		{"CAMPUS_ID": "2", "USER_District_Number": "15901"},
		{"CAMPUS_ID": "3", "USER_District_Number": "227901"},
	}
	idx := Build(rows, "CAMPUS_ID", "USER_District_Number", discard())

	group := idx.ByParent["15901"]
	if len(group) != 2 {
		t.Fatalf("group size = %d, want variant ids merged", len(group))
	}
	if group[0]["CAMPUS_ID"] != "1" || group[1]["CAMPUS_ID"] != "2" {
		t.Error("group order must follow source row order")
	}
}

func TestBuildUndetectedHeaders(t *testing.T) {
	rows := []dataset.Row{{"A": "1"}}
	idx := Build(rows, "", "", discard())
	if len(idx.ByID) != 0 || len(idx.ByParent) != 0 {
		t.Error("undetected headers must produce empty indexes, not a panic")
	}
}
