package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var (
	editDate     string
	editPriority string
	editTags     []string
	editNotes    []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id> [new text]...",
	Short: "Edit a bullet by ID for a date (default today)",
	Long: `Edit rewrites parts of a bullet in place. Positional text replaces
the title; --priority, --tag and --note replace the respective fields
when given. Fields without a flag keep their current value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority: low, med, high (or 1/2/3), or 'none' to clear")
	editCmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "Replace tags (can repeat)")
	editCmd.Flags().StringArrayVarP(&editNotes, "note", "n", nil, "Replace notes (can repeat)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	date, err := dateOrToday(editDate)
	if err != nil {
		return err
	}

	base := baseDir()
	day, err := storage.LoadDay(base, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entry, err := day.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(args) > 1 {
		entry.Text = strings.TrimSpace(strings.Join(args[1:], " "))
	}
	if editPriority != "" {
		if editPriority == "none" {
			entry.Priority = journal.None
		} else {
			p, err := journal.ParsePriority(editPriority)
			if err != nil {
				return err
			}
			entry.Priority = p
		}
	}
	if cmd.Flags().Changed("tag") {
		entry.Tags = journal.NormalizeTags(editTags)
	}
	if cmd.Flags().Changed("note") {
		entry.Notes = editNotes
	}

	if err := day.SetEntry(id, entry); err != nil {
		return err
	}
	if err := day.Save(base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Edited %s #%d\n", timeutil.FormatDate(date), id)
	return nil
}
