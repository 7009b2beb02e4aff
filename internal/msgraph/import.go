package msgraph

import (
	"fmt"
	"time"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

// Result holds counters for an import run.
type Result struct {
	Imported int
	Skipped  int
	Errors   int
}

// Options configures an import run.
type Options struct {
	Base     string
	DryRun   bool
	Tag      string
	Timezone string
}

// parseGraphTime parses a Graph API dateTime string in the given timezone.
// Graph returns times like "2026-02-27T09:00:00.0000000" without a zone
// suffix when a Prefer: outlook.timezone header is set.
func parseGraphTime(dt, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}

// shouldSkip returns true if the event should not be imported.
func shouldSkip(event CalendarEvent) bool {
	if event.IsCancelled {
		return true
	}
	if event.IsAllDay {
		return true
	}
	if event.Sensitivity == "private" {
		return true
	}
	if event.ShowAs == "free" {
		return true
	}
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return true
	}
	return false
}

// MapEvent converts a Graph calendar event into a meeting bullet and the
// day it belongs to. The event's location, when present, becomes a note.
func MapEvent(event CalendarEvent, timezone, tag string) (journal.Entry, time.Time, error) {
	start, err := parseGraphTime(event.Start.DateTime, timezone)
	if err != nil {
		return journal.Entry{}, time.Time{}, fmt.Errorf("parsing start time: %w", err)
	}
	end, err := parseGraphTime(event.End.DateTime, timezone)
	if err != nil {
		return journal.Entry{}, time.Time{}, fmt.Errorf("parsing end time: %w", err)
	}

	duration := int(end.Sub(start).Minutes())
	if duration <= 0 {
		duration = journal.DefaultDuration
	}

	e := journal.Entry{
		Kind:     journal.Meeting,
		Start:    journal.ClockTime{Hour: start.Hour(), Minute: start.Minute()},
		Duration: duration,
		Text:     event.Subject,
		Tags:     journal.NormalizeTags([]string{tag}),
	}
	if event.Location.DisplayName != "" {
		e.Notes = []string{"location: " + event.Location.DisplayName}
	}
	return e, start, nil
}

// alreadyImported reports whether the day already holds a meeting with the
// same start time and title. Positional IDs carry no identity across runs,
// so start+title is the dedup key.
func alreadyImported(entries []journal.Entry, e journal.Entry) bool {
	for _, ex := range entries {
		if ex.Kind == journal.Meeting && ex.Start == e.Start && ex.Text == e.Text {
			return true
		}
	}
	return false
}

// Import appends the given events to their day files as meeting bullets,
// skipping events already present. It prints progress to stdout and
// returns a Result.
func Import(events []CalendarEvent, opts Options) (Result, error) {
	var result Result

	for _, event := range events {
		if shouldSkip(event) {
			continue
		}

		entry, start, err := MapEvent(event, opts.Timezone, opts.Tag)
		if err != nil {
			fmt.Printf("  ! Error mapping event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}

		day, err := storage.LoadDay(opts.Base, start)
		if err != nil {
			fmt.Printf("  ! Error loading day for %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}

		if alreadyImported(day.Entries(), entry) {
			fmt.Printf("  – Skipped:  %s (already exists)\n", event.Subject)
			result.Skipped++
			continue
		}

		if !opts.DryRun {
			day.Append(entry)
			if err := day.Save(opts.Base); err != nil {
				fmt.Printf("  ! Error saving %q: %v\n", event.Subject, err)
				result.Errors++
				continue
			}
		}
		fmt.Printf("  ✓ Imported: %s %s (%s)\n",
			timeutil.FormatDate(start), entry.Start, timeutil.FormatMinutes(entry.Duration))
		result.Imported++
	}

	return result, nil
}
