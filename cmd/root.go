package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "bujo",
	Short: "bujo – a Markdown bullet journal for the terminal",
	Long: `bujo is a single-binary bullet journal that stores one Markdown
file per day under ~/.bujo/. Bullets carry priorities, tags, notes and
meeting times, and the files stay editable with any text editor.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(meetingCmd)
	rootCmd.AddCommand(outlookCmd)
}

// baseDir resolves the data directory or exits with the I/O exit code.
func baseDir() string {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return base
}

// dateOrToday parses a --date flag value, defaulting to today when empty.
func dateOrToday(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return timeutil.ParseDate(s)
}

// priorityFlag parses an optional --priority flag value; empty means no
// priority.
func priorityFlag(s string) (journal.Priority, error) {
	if s == "" {
		return journal.None, nil
	}
	return journal.ParsePriority(s)
}
