package util

import (
	"time"
)

// LayoutBCB is the day-first textual date format used by the SGS API.
const LayoutBCB = "02/01/2006"

// LayoutISO is the query-parameter date format.
const LayoutISO = "2006-01-02"

// ParseDayFirst parses a dd/mm/yyyy date. Returns (t, true) if it worked.
func ParseDayFirst(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutBCB, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseISODate parses a yyyy-mm-dd date. Returns (t, true) if it worked.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TruncateToDay drops the time-of-day component.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves t forward by n calendar months, normalized by time.Date.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthsBetween counts whole calendar months from a's month to b's month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
