package helper

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time. The layout
// check rejects things time.Parse would quietly accept (e.g. "2024-1-5").
func ParseDate(s string) (time.Time, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format: %q", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func IsFutureDate(t time.Time) bool {
	return t.After(time.Now().UTC())
}

// IsMoreThanDaysInFuture reports whether t lies more than n days ahead of now.
func IsMoreThanDaysInFuture(t time.Time, n int) bool {
	return t.After(time.Now().UTC().AddDate(0, 0, n))
}

// IsMoreThanYearsInPast reports whether t lies more than n years behind now.
func IsMoreThanYearsInPast(t time.Time, n int) bool {
	return t.Before(time.Now().UTC().AddDate(-n, 0, 0))
}

// MonthsBetween counts full calendar months elapsed from a to b (0 when b
// precedes a). Used by straight-line depreciation.
func MonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
