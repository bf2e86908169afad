package util

import "testing"

func TestParseBarTime(t *testing.T) {
	got, ok := ParseBarTime("2024-10-10 15:05:00")
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatChartTime(got) != "2024-10-10 15:05" {
		t.Fatalf("unexpected chart time %q", FormatChartTime(got))
	}
}

func TestParseBarTimeInvalid(t *testing.T) {
	if _, ok := ParseBarTime("not a time"); ok {
		t.Fatalf("expected failure")
	}
}

func TestRound(t *testing.T) {
	if got := Round(29.230769, 2); got != 29.23 {
		t.Fatalf("Round = %v", got)
	}
	if got := Round(0.625, 2); got != 0.63 {
		t.Fatalf("Round = %v", got)
	}
}
