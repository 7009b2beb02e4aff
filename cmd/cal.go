package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/timeutil"
	"github.com/avollmer/bujo/internal/view"
)

var calDate string

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Show a month calendar with markers for bullets and meetings",
	Args:  cobra.NoArgs,
	RunE:  runCal,
}

func init() {
	calCmd.Flags().StringVarP(&calDate, "date", "d", "", "Any date in the month YYYY-MM-DD (default: today)")
}

func runCal(cmd *cobra.Command, args []string) error {
	ref, err := dateOrToday(calDate)
	if err != nil {
		return err
	}

	marks, err := view.MonthMarks(baseDir(), ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	first, _ := timeutil.MonthDays(ref)
	fmt.Println(dateStyle.Render(ref.Format("2006-01")))
	fmt.Println("Mo Tu We Th Fr Sa Su")

	// Offset to the weekday of the 1st, Monday-first.
	offset := (int(first.Weekday()) + 6) % 7
	fmt.Print(strings.Repeat("    ", offset))

	for i, mark := range marks {
		fmt.Printf("%2d%c", i+1, mark)
		day := first.AddDate(0, 0, i)
		if day.Weekday() == time.Sunday { // Sunday ends the row
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Println()
	fmt.Println("legend: * meeting, + open bullets, . only done, ' ' empty")
	return nil
}
