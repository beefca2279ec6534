package conversion

import (
	"time"
)

// DateLayout is the calendar-date layout used by the rate source and in API responses.
const DateLayout = "2006-01-02"

// RateWindowMonths bounds how stale a usable exchange rate may be.
const RateWindowMonths = 6

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the UTC calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// SixMonthsBefore returns the calendar date RateWindowMonths months before t in UTC.
func SixMonthsBefore(t time.Time) time.Time {
	return minusMonths(DateOf(t), RateWindowMonths)
}

// minusMonths subtracts calendar months, clamping the day to the end of the target month
// (Aug 31 minus 6 months is Feb 28/29, not early March as AddDate would give).
func minusMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m-time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
