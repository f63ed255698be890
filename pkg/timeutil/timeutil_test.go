package timeutil

import (
	"testing"
	"time"
)

func TestFormatAndParseDate(t *testing.T) {
	want := "2024-03-01"
	parsed, err := ParseDate(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != want {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-02-29") {
		t.Fatalf("leap day should be valid")
	}
	for _, bad := range []string{"2024-13-01", "2024-3-1", "not a date", ""} {
		if ValidDate(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2024-03-01", "2024-03-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 {
		t.Fatalf("expected 10 days, got %d", n)
	}

	n, err = DaysBetween("2024-03-11", "2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 {
		t.Fatalf("expected absolute distance, got %d", n)
	}
}

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 7*24*time.Hour {
		t.Fatalf("expected one week, got %v", dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 9 * 24 * time.Hour; dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("soon"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
}
