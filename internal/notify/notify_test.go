package notify_test

import (
	"os"
	"testing"

	"github.com/avollmer/bujo/internal/notify"
)

func TestStateRoundTrip(t *testing.T) {
	base := t.TempDir()

	state := notify.LoadState(base)
	if state.Sent("2026-02-27|15:00") {
		t.Error("fresh state reports key as sent")
	}

	state.MarkSent("2026-02-27|15:00")
	state.MarkSent("2026-02-27|16:30")
	if err := state.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := notify.LoadState(base)
	if !reloaded.Sent("2026-02-27|15:00") || !reloaded.Sent("2026-02-27|16:30") {
		t.Error("saved keys not found after reload")
	}
	if reloaded.Sent("2026-02-28|15:00") {
		t.Error("unknown key reported as sent")
	}
}

func TestLoadStateToleratesGarbage(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(notify.StatePath(base), []byte("\n\n  \n2026-02-27|09:00\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	state := notify.LoadState(base)
	if !state.Sent("2026-02-27|09:00") {
		t.Error("valid key lost among blank lines")
	}
}
