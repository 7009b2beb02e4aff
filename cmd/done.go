package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var doneDate string

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a bullet done by ID for a date (default today)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
}

// parseID parses a 1-based entry ID argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	date, err := dateOrToday(doneDate)
	if err != nil {
		return err
	}

	base := baseDir()
	day, err := storage.LoadDay(base, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := day.MarkDone(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := day.Save(base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Marked done: %s #%d\n", timeutil.FormatDate(date), id)
	return nil
}
