package journal

import (
	"fmt"
	"strings"
)

// Kind distinguishes plain tasks from scheduled meetings.
type Kind int

const (
	Task Kind = iota
	Meeting
)

// Priority levels render as one, two, or three '!' glyphs in parentheses.
// None means the bullet carries no priority marker at all.
type Priority int

const (
	None Priority = iota
	Low
	Medium
	High
)

// DefaultDuration is the meeting length in minutes assumed when the
// [mtg HH:MM] prefix carries no explicit duration token.
const DefaultDuration = 60

// Marker returns the textual priority glyph, or "" for None.
func (p Priority) Marker() string {
	switch p {
	case Low:
		return "(!)"
	case Medium:
		return "(!!)"
	case High:
		return "(!!!)"
	}
	return ""
}

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "none"
}

// ParsePriority accepts the CLI spellings low/med/high, l/m/h and 1/2/3.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "low", "l":
		return Low, nil
	case "2", "med", "medium", "m":
		return Medium, nil
	case "3", "high", "h":
		return High, nil
	}
	return None, fmt.Errorf("invalid priority %q (expected low, med, high or 1-3)", s)
}

// ClockTime is a minute-resolution time of day used for meeting starts.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (24h, one- or two-digit hour). The boolean is
// false for anything out of the 0-23:0-59 range or not matching the shape.
func ParseClock(s string) (ClockTime, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(m) != 2 || len(h) < 1 || len(h) > 2 {
		return ClockTime{}, false
	}
	hour, ok1 := atoiDigits(h)
	minute, ok2 := atoiDigits(m)
	if !ok1 || !ok2 || hour > 23 || minute > 59 {
		return ClockTime{}, false
	}
	return ClockTime{Hour: hour, Minute: minute}, true
}

// atoiDigits parses a non-empty all-digit string; no signs, no spaces.
func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns minutes since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// Entry is one journal bullet together with its trailing note lines.
//
// ID is the entry's 1-based position among recognized bullets in its day
// file. It is derived on every parse and never persisted; deleting an entry
// renumbers everything after it on the next read.
type Entry struct {
	ID       int
	Done     bool
	Kind     Kind
	Start    ClockTime // meeting start, Meeting entries only
	Duration int       // meeting length in minutes, Meeting entries only
	Priority Priority
	Text     string
	Tags     []string
	Notes    []string
}

// HasTag reports whether the entry carries the given (lowercase) tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags lowercases and deduplicates tags the same way the codec
// does, preserving first-occurrence order. Used when entries are built from
// CLI input rather than parsed from a file.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(t, "#")))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
