// Package view implements the read-only queries over day files: tag and
// priority filtering, the weekly timeline, month calendar markers and the
// meeting lookahead window. No query holds cross-date state; each day is an
// independent load.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

// Filter narrows entries by tag membership and priority equality. The zero
// Filter accepts everything.
type Filter struct {
	Tags     []string
	Priority journal.Priority // None = no priority filter
}

// Matches reports whether e passes the filter: every filter tag must be
// present on the entry, and the priority must match exactly when set.
func (f Filter) Matches(e journal.Entry) bool {
	if f.Priority != journal.None && e.Priority != f.Priority {
		return false
	}
	for _, t := range f.Tags {
		if !e.HasTag(strings.ToLower(t)) {
			return false
		}
	}
	return true
}

// Apply returns the entries accepted by f, preserving order.
func Apply(entries []journal.Entry, f Filter) []journal.Entry {
	var out []journal.Entry
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// WeekDay is one day's slice of a week view. Err records a failed load;
// that day renders as empty and the rest of the week is unaffected.
type WeekDay struct {
	Date    time.Time
	Entries []journal.Entry
	Err     error
}

// Week loads the 7 days of the calendar week containing ref (Monday first)
// and applies the filter to each day independently.
func Week(base string, ref time.Time, f Filter) []WeekDay {
	start := timeutil.WeekStart(ref)
	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		day, err := storage.LoadDay(base, date)
		if err != nil {
			days = append(days, WeekDay{Date: date, Err: err})
			continue
		}
		days = append(days, WeekDay{Date: date, Entries: Apply(day.Entries(), f)})
	}
	return days
}

// Mark is a month-calendar day marker. Precedence: any meeting beats open
// bullets, open bullets beat done-only, and a day without entries is blank.
type Mark rune

const (
	MarkMeeting Mark = '*'
	MarkOpen    Mark = '+'
	MarkDone    Mark = '.'
	MarkEmpty   Mark = ' '
)

// MonthMarks computes a marker for every day of the calendar month
// containing ref. Element i holds the mark for day i+1.
func MonthMarks(base string, ref time.Time) ([]Mark, error) {
	first, n := timeutil.MonthDays(ref)
	marks := make([]Mark, n)
	for i := range marks {
		day, err := storage.LoadDay(base, first.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		marks[i] = markFor(day.Entries())
	}
	return marks, nil
}

func markFor(entries []journal.Entry) Mark {
	mark := MarkEmpty
	for _, e := range entries {
		switch {
		case e.Kind == journal.Meeting:
			return MarkMeeting
		case !e.Done:
			mark = MarkOpen
		case mark == MarkEmpty:
			mark = MarkDone
		}
	}
	return mark
}

// Meetings returns the meeting entries sorted by start time. Sorting is
// stable so meetings sharing a start keep file order.
func Meetings(entries []journal.Entry) []journal.Entry {
	var out []journal.Entry
	for _, e := range entries {
		if e.Kind == journal.Meeting {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.MinuteOfDay() < out[j].Start.MinuteOfDay()
	})
	return out
}

// MeetingsWithin selects meetings whose start falls within [now, now+window]
// on the same day. window is in minutes; there is no cross-midnight carry.
func MeetingsWithin(entries []journal.Entry, now time.Time, window int) []journal.Entry {
	nowMin := now.Hour()*60 + now.Minute()
	var out []journal.Entry
	for _, e := range entries {
		if e.Kind != journal.Meeting {
			continue
		}
		diff := e.Start.MinuteOfDay() - nowMin
		if diff >= 0 && diff <= window {
			out = append(out, e)
		}
	}
	return out
}
