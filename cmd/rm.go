package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var rmDate string

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a bullet and its notes by ID for a date (default today)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().StringVarP(&rmDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	date, err := dateOrToday(rmDate)
	if err != nil {
		return err
	}

	base := baseDir()
	day, err := storage.LoadDay(base, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	removed, err := day.Delete(id)
	if err != nil {
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

	fmt.Printf("Removed from %s: %s\n", timeutil.FormatDate(date), removed.Text)
	return nil
}
