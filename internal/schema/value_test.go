package schema

import (
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234", 1234, true},
		{"1234.5", 1234.5, true},
		{" $18,125 ", 18125, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"-42", -42, true},
	}
	for _, c := range cases {
		got, ok := Number(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("Number(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDate(t *testing.T) {
	got, ok := Date("2024-01-31")
	if !ok || !got.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date(2024-01-31) = %v, %v", got, ok)
	}
	if _, ok := Date("2024-01-31T23:00:00"); !ok {
		t.Error("expected ISO timestamp to parse")
	}
	if _, ok := Date("01/15/2024"); !ok {
		t.Error("expected US-style date to parse")
	}
	if _, ok := Date("not a date"); ok {
		t.Error("expected failure for junk input")
	}
	if _, ok := Date(""); ok {
		t.Error("expected failure for empty input")
	}
}
