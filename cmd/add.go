package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var (
	addDate     string
	addPriority string
	addTags     []string
	addNotes    []string
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a bullet to a date (default today)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, med, high (or 1/2/3)")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (can repeat)")
	addCmd.Flags().StringArrayVarP(&addNotes, "note", "n", nil, "Note line (can repeat)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(addDate)
	if err != nil {
		return err
	}
	priority, err := priorityFlag(addPriority)
	if err != nil {
		return err
	}

	entry := journal.Entry{
		Priority: priority,
		Text:     strings.TrimSpace(strings.Join(args, " ")),
		Tags:     journal.NormalizeTags(addTags),
		Notes:    addNotes,
	}

	base := baseDir()
	day, err := storage.LoadDay(base, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	id := day.Append(entry)
	if err := day.Save(base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Added #%d to %s\n", id, timeutil.FormatDate(date))
	return nil
}
