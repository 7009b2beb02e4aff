// Package notify dispatches best-effort desktop notifications for upcoming
// meetings and remembers which ones were already announced.
package notify

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Send dispatches a desktop notification via notify-send when available,
// falling back to plain stdout. Callers treat failures as non-fatal.
func Send(title, body string) error {
	if path, err := exec.LookPath("notify-send"); err == nil {
		return exec.Command(path, title, body).Run()
	}
	fmt.Printf("%s: %s\n", title, body)
	return nil
}

// State tracks which meeting notifications were already sent so a meeting
// is announced once even when notify runs on a timer. Keys are
// "YYYY-MM-DD|HH:MM" per meeting start.
type State struct {
	path string
	sent map[string]bool
}

// StatePath returns the sent-state file below the data directory.
func StatePath(base string) string {
	return filepath.Join(base, "notified.meetings")
}

// LoadState reads the sent-state file. A missing or unreadable file yields
// fresh state; at worst a notification repeats.
func LoadState(base string) *State {
	s := &State{path: StatePath(base), sent: make(map[string]bool)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			s.sent[line] = true
		}
	}
	return s
}

// Sent reports whether the key was already announced.
func (s *State) Sent(key string) bool {
	return s.sent[key]
}

// MarkSent records the key as announced. Call Save to persist.
func (s *State) MarkSent(key string) {
	s.sent[key] = true
}

// Save persists the sent state, one key per line.
func (s *State) Save() error {
	keys := make([]string, 0, len(s.sent))
	for k := range s.sent {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('\n')
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing notify state: %w", err)
	}
	return nil
}
