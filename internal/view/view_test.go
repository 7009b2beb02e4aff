package view_test

import (
	"os"
	"testing"
	"time"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/view"
)

func seedDay(t *testing.T, base string, date time.Time, entries ...journal.Entry) {
	t.Helper()
	d, err := storage.LoadDay(base, date)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		d.Append(e)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}
}

func TestFilterByTagAndPriority(t *testing.T) {
	both := journal.Entry{Text: "both", Tags: []string{"work", "urgent"}}
	workOnly := journal.Entry{Text: "work only", Tags: []string{"work"}}
	high := journal.Entry{Text: "high", Priority: journal.High}
	med := journal.Entry{Text: "med", Priority: journal.Medium}
	entries := []journal.Entry{both, workOnly, high, med}

	got := view.Apply(entries, view.Filter{Tags: []string{"urgent"}})
	if len(got) != 1 || got[0].Text != "both" {
		t.Errorf("tag filter = %+v, want only %q", got, "both")
	}

	got = view.Apply(entries, view.Filter{Priority: journal.High})
	if len(got) != 1 || got[0].Text != "high" {
		t.Errorf("priority filter = %+v, want only %q", got, "high")
	}

	// Tags on the filter are case-folded like tags in the files.
	got = view.Apply(entries, view.Filter{Tags: []string{"Work"}})
	if len(got) != 2 {
		t.Errorf("case-folded tag filter matched %d entries, want 2", len(got))
	}

	// Zero filter is the identity.
	if got = view.Apply(entries, view.Filter{}); len(got) != len(entries) {
		t.Errorf("zero filter dropped entries: %d of %d", len(got), len(entries))
	}
}

func TestWeek(t *testing.T) {
	base := t.TempDir()
	// 2026-02-27 is a Friday; the containing week is Mon 02-23 .. Sun 03-01.
	fri := time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	seedDay(t, base, mon, journal.Entry{Text: "monday task", Tags: []string{"work"}})
	seedDay(t, base, fri,
		journal.Entry{Text: "friday work", Tags: []string{"work"}},
		journal.Entry{Text: "friday other"},
	)

	days := view.Week(base, fri, view.Filter{Tags: []string{"work"}})
	if len(days) != 7 {
		t.Fatalf("week has %d days, want 7", len(days))
	}
	if !days[0].Date.Equal(mon) {
		t.Errorf("week starts %v, want %v", days[0].Date, mon)
	}
	if len(days[0].Entries) != 1 || days[0].Entries[0].Text != "monday task" {
		t.Errorf("monday = %+v", days[0].Entries)
	}
	if len(days[4].Entries) != 1 || days[4].Entries[0].Text != "friday work" {
		t.Errorf("friday = %+v", days[4].Entries)
	}
	for _, i := range []int{1, 2, 3, 5, 6} {
		if len(days[i].Entries) != 0 || days[i].Err != nil {
			t.Errorf("day %d should be empty without error: %+v", i, days[i])
		}
	}
}

func TestWeekCapturesPerDayErrors(t *testing.T) {
	base := t.TempDir()
	fri := time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	seedDay(t, base, mon, journal.Entry{Text: "monday task"})
	// A directory where Tuesday's file should be makes that day unreadable.
	if err := os.MkdirAll(storage.DayFilePath(base, tue), 0o700); err != nil {
		t.Fatal(err)
	}

	days := view.Week(base, fri, view.Filter{})
	if len(days) != 7 {
		t.Fatalf("week has %d days, want 7", len(days))
	}
	if days[1].Err == nil {
		t.Error("unreadable day carries no error")
	}
	if len(days[1].Entries) != 0 {
		t.Errorf("unreadable day has entries: %+v", days[1].Entries)
	}
	if days[0].Err != nil || len(days[0].Entries) != 1 {
		t.Errorf("monday = %+v, want one entry and no error", days[0])
	}
	for _, i := range []int{2, 3, 4, 5, 6} {
		if days[i].Err != nil || len(days[i].Entries) != 0 {
			t.Errorf("day %d should be empty without error: %+v", i, days[i])
		}
	}
}

func TestMonthMarks(t *testing.T) {
	base := t.TempDir()
	feb := func(day int) time.Time {
		return time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC)
	}
	seedDay(t, base, feb(3), journal.Entry{Text: "open"})
	seedDay(t, base, feb(10), journal.Entry{Done: true, Text: "done"})
	seedDay(t, base, feb(14),
		journal.Entry{Done: true, Text: "done"},
		journal.Entry{Kind: journal.Meeting, Start: journal.ClockTime{Hour: 15}, Duration: 60, Text: "mtg"},
	)
	seedDay(t, base, feb(20),
		journal.Entry{Done: true, Text: "done"},
		journal.Entry{Text: "open"},
	)

	marks, err := view.MonthMarks(base, feb(1))
	if err != nil {
		t.Fatalf("MonthMarks: %v", err)
	}
	if len(marks) != 28 {
		t.Fatalf("marks = %d days, want 28", len(marks))
	}

	tests := []struct {
		day  int
		want view.Mark
	}{
		{3, view.MarkOpen},
		{10, view.MarkDone},
		{14, view.MarkMeeting}, // meeting beats done
		{20, view.MarkOpen},    // open beats done
		{7, view.MarkEmpty},    // no file
	}
	for _, tt := range tests {
		if got := marks[tt.day-1]; got != tt.want {
			t.Errorf("day %d mark = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestMeetingsSorted(t *testing.T) {
	entries := []journal.Entry{
		{Kind: journal.Meeting, Start: journal.ClockTime{Hour: 15}, Duration: 60, Text: "later"},
		{Text: "not a meeting"},
		{Kind: journal.Meeting, Start: journal.ClockTime{Hour: 9, Minute: 30}, Duration: 60, Text: "earlier"},
	}
	got := view.Meetings(entries)
	if len(got) != 2 || got[0].Text != "earlier" || got[1].Text != "later" {
		t.Errorf("Meetings = %+v", got)
	}
}

func TestMeetingsWithin(t *testing.T) {
	meeting := journal.Entry{
		Kind: journal.Meeting, Start: journal.ClockTime{Hour: 15}, Duration: 60, Text: "sync",
	}
	task := journal.Entry{Text: "not a meeting"}
	now := time.Date(2026, 2, 27, 14, 50, 0, 0, time.UTC)

	tests := []struct {
		name   string
		window int
		want   int
	}{
		{"inside the window", 15, 1},
		{"outside the window", 5, 0},
		{"exactly on the edge", 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view.MeetingsWithin([]journal.Entry{meeting, task}, now, tt.window)
			if len(got) != tt.want {
				t.Errorf("window %d selected %d meetings, want %d", tt.window, len(got), tt.want)
			}
		})
	}

	// A meeting already started is never selected.
	later := time.Date(2026, 2, 27, 15, 1, 0, 0, time.UTC)
	if got := view.MeetingsWithin([]journal.Entry{meeting}, later, 60); len(got) != 0 {
		t.Errorf("past meeting selected: %+v", got)
	}
}
