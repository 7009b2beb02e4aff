package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/timeutil"
	"github.com/avollmer/bujo/internal/view"
)

var (
	weekDate     string
	weekTags     []string
	weekPriority string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a weekly view for the week containing a date (default: today)",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	weekCmd.Flags().StringVarP(&weekDate, "date", "d", "", "Any date in the target week YYYY-MM-DD (default: today)")
	weekCmd.Flags().StringArrayVarP(&weekTags, "tag", "t", nil, "Filter by tag (can repeat)")
	weekCmd.Flags().StringVarP(&weekPriority, "priority", "p", "", "Filter by priority: low, med, high (or 1/2/3)")
}

func runWeek(cmd *cobra.Command, args []string) error {
	ref, err := dateOrToday(weekDate)
	if err != nil {
		return err
	}
	priority, err := priorityFlag(weekPriority)
	if err != nil {
		return err
	}

	filter := view.Filter{Tags: weekTags, Priority: priority}
	for _, day := range view.Week(baseDir(), ref, filter) {
		fmt.Println()
		fmt.Println(dateStyle.Render("# " + timeutil.FormatDate(day.Date) + " " + day.Date.Format("Mon")))
		if day.Err != nil {
			fmt.Printf("  (unreadable: %v)\n", day.Err)
			continue
		}

		open, done := 0, 0
		for _, e := range day.Entries {
			if e.Done {
				done++
			} else {
				open++
			}
		}
		fmt.Printf("Open: %d, Done: %d\n", open, done)
		for _, e := range day.Entries {
			fmt.Println(renderEntry(e))
		}
	}
	return nil
}
