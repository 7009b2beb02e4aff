package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for dates everywhere: file names, flags
// and rendered output.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Monday 00:00:00 of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	return StartOfDay(t.AddDate(0, 0, -(wd - 1)))
}

// MonthDays returns the first day of t's month and the number of days in it.
func MonthDays(t time.Time) (time.Time, int) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1).Day()
}

// FormatMinutes converts a minute count to a human-friendly string.
// Examples: 90 → "1h 30m", 30 → "30m".
func FormatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}
	h := m / 60
	rest := m % 60
	if h > 0 && rest > 0 {
		return fmt.Sprintf("%dh %dm", h, rest)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", rest)
}
