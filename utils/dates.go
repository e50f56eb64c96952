// utils/dates.go
package utils

import "time"

// DateLayout is the date-only format used for preferred_date columns.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string. The boolean is false when the input
// is empty or malformed.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date-only YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns today's date as YYYY-MM-DD. Date strings in this format sort
// chronologically, so callers compare them lexicographically.
func Today() string {
	return FormatDate(time.Now())
}
