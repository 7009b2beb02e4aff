package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/migrate"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

var (
	migrateFrom string
	migrateTo   string
	migrateID   int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move open bullets to another day (default: yesterday to today)",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "Source date YYYY-MM-DD (default: yesterday)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "Destination date YYYY-MM-DD (default: today)")
	migrateCmd.Flags().IntVar(&migrateID, "id", 0, "Migrate only the bullet with this ID")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	now := time.Now()

	from := now.AddDate(0, 0, -1)
	if migrateFrom != "" {
		var err error
		from, err = timeutil.ParseDate(migrateFrom)
		if err != nil {
			return err
		}
	}
	to := now
	if migrateTo != "" {
		var err error
		to, err = timeutil.ParseDate(migrateTo)
		if err != nil {
			return err
		}
	}

	res, err := migrate.Run(baseDir(), from, to, migrateID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, migrate.ErrSameDay) {
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if res.Moved == 0 {
		fmt.Printf("No open bullets to migrate from %s\n", timeutil.FormatDate(from))
		return nil
	}
	fmt.Printf("Migrated %d open bullet(s) from %s to %s\n",
		res.Moved, timeutil.FormatDate(from), timeutil.FormatDate(to))
	return nil
}
