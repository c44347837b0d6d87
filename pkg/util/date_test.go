package util

import (
	"testing"
	"time"
)

func TestParseDayFirst(t *testing.T) {
	got, ok := ParseDayFirst("01/02/2024")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDayFirstRejectsISO(t *testing.T) {
	if _, ok := ParseDayFirst("2024-02-01"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2024-02-01")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestAddMonthsYearRollover(t *testing.T) {
	got := AddMonths(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), 3)
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMonthsBetween(t *testing.T) {
	a := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if n := MonthsBetween(a, b); n != 3 {
		t.Fatalf("got %d want 3", n)
	}
}
