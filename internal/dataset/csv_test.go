package dataset

import (
	"log/slog"
	"strings"
	"testing"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestDecodeCSVPreservesLeadingZeros(t *testing.T) {
	in := "DISTRICT_N,NAME\n015901,Alamo Heights ISD\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if got := tbl.Rows[0]["DISTRICT_N"]; got != "015901" {
		t.Errorf("id = %q, leading zeros must survive parsing", got)
	}
}

func TestDecodeCSVStripsBOM(t *testing.T) {
	in := "\ufeffNAME,COUNTY\nAustin ISD,Travis\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	if tbl.Headers[0] != "NAME" {
		t.Errorf("first header = %q, want BOM stripped", tbl.Headers[0])
	}
}

func TestDecodeCSVRenamesDuplicateHeaders(t *testing.T) {
	in := "Score,Score,Score\n90,80,70\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	want := []string{"Score", "Score-1", "Score-2"}
	for i, h := range want {
		if tbl.Headers[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, tbl.Headers[i], h)
		}
	}
	if tbl.Rows[0]["Score"] != "90" || tbl.Rows[0]["Score-2"] != "70" {
		t.Errorf("duplicate columns misassigned: %v", tbl.Rows[0])
	}
}

func TestDecodeCSVSkipsEmptyLines(t *testing.T) {
	in := "A,B\n1,2\n,\n3,4\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	if len(tbl.Rows) != 2 {
		t.Errorf("rows = %d, want blank line skipped", len(tbl.Rows))
	}
}

func TestDecodeCSVQuotedValues(t *testing.T) {
	in := "NAME,NOTE\n\"Smith, John\",\"said \"\"hi\"\"\"\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	if got := tbl.Rows[0]["NAME"]; got != "Smith, John" {
		t.Errorf("NAME = %q", got)
	}
	if got := tbl.Rows[0]["NOTE"]; got != `said "hi"` {
		t.Errorf("NOTE = %q", got)
	}
}

func TestDecodeCSVShortRecord(t *testing.T) {
	in := "A,B,C\n1,2\n"
	tbl := DecodeCSV(strings.NewReader(in), discard())
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if _, ok := tbl.Rows[0]["C"]; ok {
		t.Error("missing trailing column should be absent, not empty-present")
	}
}

func TestSampleRow(t *testing.T) {
	tbl := &Table{
		Headers: []string{"A"},
		Rows:    []Row{{"A": " "}, {"A": "x"}},
	}
	got := tbl.SampleRow()
	if got == nil || got["A"] != "x" {
		t.Errorf("SampleRow = %v, want first populated row", got)
	}
}
