package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
	"github.com/avollmer/bujo/internal/view"
)

var (
	listDate     string
	listTags     []string
	listPriority string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bullets for a date (default today)",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
	listCmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Filter by tag (can repeat)")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority: low, med, high (or 1/2/3)")
}

func runList(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(listDate)
	if err != nil {
		return err
	}
	priority, err := priorityFlag(listPriority)
	if err != nil {
		return err
	}

	base := baseDir()
	day, err := storage.LoadDay(base, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	filter := view.Filter{Tags: listTags, Priority: priority}
	entries := view.Apply(day.Entries(), filter)
	if len(entries) == 0 {
		fmt.Printf("No bullets for %s\n", timeutil.FormatDate(date))
		return nil
	}

	for _, e := range entries {
		fmt.Println(renderEntry(e))
	}
	return nil
}
