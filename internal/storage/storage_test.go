package storage_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
)

var day = time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

func writeDay(t *testing.T, base, content string) {
	t.Helper()
	path := storage.DayFilePath(base, day)
	if err := os.MkdirAll(base+"/2026/02", 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readDay(t *testing.T, base string) string {
	t.Helper()
	data, err := os.ReadFile(storage.DayFilePath(base, day))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLoadDayMissingFileIsEmpty(t *testing.T) {
	base := t.TempDir()
	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay on missing file: %v", err)
	}
	if got := len(d.Entries()); got != 0 {
		t.Errorf("entries = %d, want 0", got)
	}
}

func TestNoOpSaveIsByteIdentical(t *testing.T) {
	base := t.TempDir()
	content := "# Friday\n" +
		"- [ ] (!!) first #work\n" +
		"  - note: with a note\n" +
		"\n" +
		"stray manual line\n" +
		"- [x] second\n"
	writeDay(t, base, content)

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Save(base); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := readDay(t, base); got != content {
		t.Errorf("no-op save changed file:\n got  %q\n want %q", got, content)
	}

	// IDs are stable across the reload as well.
	reloaded, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	before, after := d.Entries(), reloaded.Entries()
	if len(before) != len(after) {
		t.Fatalf("entry count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Text != after[i].Text {
			t.Errorf("entry %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestAppendAssignsNextID(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "- [ ] one\n- [ ] two\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	id := d.Append(journal.Entry{Text: "three"})
	if id != 3 {
		t.Errorf("Append id = %d, want 3", id)
	}
}

func TestMarkDone(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "- [ ] one\n  - note: keep me\n- [ ] two\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.MarkDone(1); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}

	want := "- [x] one\n  - note: keep me\n- [ ] two\n"
	if got := readDay(t, base); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestMarkDoneAlreadyDoneIsNoOp(t *testing.T) {
	base := t.TempDir()
	// The title itself contains an open-checkbox sequence; marking the
	// already-done entry again must not touch it.
	content := "- [x] explain the - [ ] checkbox syntax\n"
	writeDay(t, base, content)

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.MarkDone(1); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}

	if got := readDay(t, base); got != content {
		t.Errorf("marking a done entry changed the file:\n got  %q\n want %q", got, content)
	}
}

func TestMarkDoneIndentedBullet(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "  - [ ] indented one\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.MarkDone(1); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}

	want := "  - [x] indented one\n"
	if got := readDay(t, base); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestDeleteRenumbers(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "- [ ] one\n- [ ] two\n  - note: goes with two\n- [ ] three\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	removed, err := d.Delete(2)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Text != "two" {
		t.Errorf("removed = %+v", removed)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}

	reloaded, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	entries := reloaded.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != 1 || entries[0].Text != "one" {
		t.Errorf("entry 1 = %+v", entries[0])
	}
	if entries[1].ID != 2 || entries[1].Text != "three" {
		t.Errorf("entry 2 = %+v (former ID 3 should renumber to 2)", entries[1])
	}
}

func TestNotFound(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "- [ ] only\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{0, -1, 2, 99} {
		err := d.MarkDone(id)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("MarkDone(%d) err = %v, want ErrNotFound", id, err)
		}
		var nf *storage.NotFoundError
		if !errors.As(err, &nf) || nf.ID != id {
			t.Errorf("MarkDone(%d) did not carry the ID: %v", id, err)
		}
	}
}

func TestSetEntryReplacesNotes(t *testing.T) {
	base := t.TempDir()
	writeDay(t, base, "- [ ] one\n  - note: old\n- [ ] two\n")

	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	e, err := d.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	e.Text = "one edited"
	e.Notes = []string{"new a", "new b"}
	if err := d.SetEntry(1, e); err != nil {
		t.Fatalf("SetEntry: %v", err)
	}
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}

	want := "- [ ] one edited\n  - note: new a\n  - note: new b\n- [ ] two\n"
	if got := readDay(t, base); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	base := t.TempDir()
	d, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	d.Append(journal.Entry{Text: "anything"})
	if err := d.Save(base); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(storage.DayFilePath(base, day) + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}
