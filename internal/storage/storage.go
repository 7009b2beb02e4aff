package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avollmer/bujo/internal/journal"
)

// ErrNotFound is the sentinel matched by errors.Is for any ID-addressed
// operation that targets a nonexistent entry.
var ErrNotFound = errors.New("entry not found")

// NotFoundError reports which ID was missing. It satisfies
// errors.Is(err, ErrNotFound).
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BaseDir returns the root data directory (~/.bujo).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".bujo"), nil
}

// DayFilePath returns the Markdown file path for the given date.
func DayFilePath(base string, t time.Time) string {
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".md")
}

// Day holds one date's journal file as an ordered sequence of raw lines.
// Recognized bullets are a derived view over the lines; everything else
// (headings, blank lines, stray text) is preserved verbatim in place.
type Day struct {
	Date  time.Time
	lines []string
}

// LoadDay loads the day file for the given date. A missing file is a valid
// empty day, not an error; any other read failure is.
func LoadDay(base string, t time.Time) (*Day, error) {
	path := DayFilePath(base, t)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Day{Date: t}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Day{Date: t, lines: splitLines(string(data))}, nil
}

// splitLines splits file content into lines without trailing newline
// artifacts, tolerating CRLF endings from external editors.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Save atomically writes the day's content back to disk: write to a temp
// file in the same directory, then rename, so a crash mid-write cannot
// leave a truncated file.
func (d *Day) Save(base string) error {
	path := DayFilePath(base, d.Date)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating directories for %s: %w", path, err)
	}

	var contents string
	if len(d.lines) > 0 {
		contents = strings.Join(d.lines, "\n") + "\n"
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file for %s: %w", path, err)
	}
	return nil
}

// Entries derives the 1-based entry view from the current line content.
// The view is recomputed on every call; IDs are never cached or stored.
func (d *Day) Entries() []journal.Entry {
	located := journal.ParseLines(d.lines)
	out := make([]journal.Entry, len(located))
	for i, l := range located {
		out[i] = l.Entry
	}
	return out
}

// Append adds e (and its notes) at the end of the day's content and returns
// the ID the new entry received.
func (d *Day) Append(e journal.Entry) int {
	d.lines = append(d.lines, journal.EncodeLines(e)...)
	return len(journal.ParseLines(d.lines))
}

// locate finds the entry with the given 1-based ID in the current content.
func (d *Day) locate(id int) (journal.Located, error) {
	if id >= 1 {
		for _, l := range journal.ParseLines(d.lines) {
			if l.ID == id {
				return l, nil
			}
		}
	}
	return journal.Located{}, &NotFoundError{ID: id}
}

// Get returns the entry with the given ID.
func (d *Day) Get(id int) (journal.Entry, error) {
	l, err := d.locate(id)
	if err != nil {
		return journal.Entry{}, err
	}
	return l.Entry, nil
}

// MarkDone flips the checkbox on the entry with the given ID. The rest of
// the line and the entry's notes are left untouched. Marking an already
// done entry is a no-op, not an error. Only the leading checkbox is ever
// rewritten; an open-checkbox sequence inside the title must not be.
func (d *Day) MarkDone(id int) error {
	l, err := d.locate(id)
	if err != nil {
		return err
	}
	line := d.lines[l.Line]
	trimmed := strings.TrimLeft(line, " \t")
	if rest, ok := strings.CutPrefix(trimmed, "- [ ] "); ok {
		indent := line[:len(line)-len(trimmed)]
		d.lines[l.Line] = indent + "- [x] " + rest
	}
	return nil
}

// Delete removes the entry's bullet line together with its contiguous note
// lines and returns the removed entry. Entries after it renumber on the
// next Entries call.
func (d *Day) Delete(id int) (journal.Entry, error) {
	l, err := d.locate(id)
	if err != nil {
		return journal.Entry{}, err
	}
	d.lines = append(d.lines[:l.Line:l.Line], d.lines[l.Line+l.Span:]...)
	return l.Entry, nil
}

// SetEntry replaces the entry with the given ID by e, re-encoded in
// canonical form. The positional ID on e is ignored.
func (d *Day) SetEntry(id int, e journal.Entry) error {
	l, err := d.locate(id)
	if err != nil {
		return err
	}
	repl := journal.EncodeLines(e)
	out := make([]string, 0, len(d.lines)-l.Span+len(repl))
	out = append(out, d.lines[:l.Line]...)
	out = append(out, repl...)
	out = append(out, d.lines[l.Line+l.Span:]...)
	d.lines = out
	return nil
}
