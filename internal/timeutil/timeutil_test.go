package timeutil_test

import (
	"testing"
	"time"

	"github.com/avollmer/bujo/internal/timeutil"
)

func TestParseDate(t *testing.T) {
	got, err := timeutil.ParseDate("2026-02-27")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 27 {
		t.Errorf("ParseDate = %v", got)
	}

	for _, bad := range []string{"", "2026-2-27", "27.02.2026", "tomorrow"} {
		if _, err := timeutil.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"friday",
			time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday stays",
			time.Date(2026, 2, 23, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the preceding monday",
			time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		if got := timeutil.WeekStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("%s: WeekStart = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		in   time.Time
		days int
	}{
		{time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, 2, 15, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		first, days := timeutil.MonthDays(tt.in)
		if first.Day() != 1 || first.Month() != tt.in.Month() {
			t.Errorf("MonthDays(%v) first = %v", tt.in, first)
		}
		if days != tt.days {
			t.Errorf("MonthDays(%v) days = %d, want %d", tt.in, days, tt.days)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
	}
	for _, tt := range tests {
		if got := timeutil.FormatMinutes(tt.in); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	if !timeutil.SameDay(a, b) {
		t.Error("SameDay(a, b) = false")
	}
	if timeutil.SameDay(a, c) {
		t.Error("SameDay(a, c) = true")
	}
}
