package wfh

import "time"

// DateLayout is the wire format for every calendar date.
const DateLayout = "2006-01-02"

// DateOf drops the clock part of t, keeping t's own calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// AddMonths moves d by n calendar months. The day is clamped to the last day of the
// target month, so Dec 31 + 2 months is Feb 28/29 rather than spilling into March.
func AddMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
