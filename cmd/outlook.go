package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/config"
	"github.com/avollmer/bujo/internal/msgraph"
	"github.com/avollmer/bujo/internal/timeutil"
)

var (
	outlookSyncFrom   string
	outlookSyncTo     string
	outlookSyncDate   string
	outlookSyncDryRun bool
	outlookSyncTag    string
	outlookSyncTZ     string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import Outlook calendar events as meeting bullets",
	Args:  cobra.NoArgs,
	RunE:  runOutlookSync,
}

func init() {
	outlookSyncCmd.Flags().StringVar(&outlookSyncFrom, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookSyncCmd.Flags().StringVar(&outlookSyncDate, "date", "", "Import a specific date (YYYY-MM-DD); default today")
	outlookSyncCmd.Flags().BoolVar(&outlookSyncDryRun, "dry-run", false, "Print planned operations without writing")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTag, "tag", "", "Tag for imported meetings (default from config)")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTZ, "timezone", "", "IANA timezone for event times (default from config)")
	outlookCmd.AddCommand(outlookSyncCmd)
}

func runOutlookSync(cmd *cobra.Command, args []string) error {
	now := time.Now()
	var from, to time.Time

	switch {
	case outlookSyncDate != "":
		d, err := timeutil.ParseDate(outlookSyncDate)
		if err != nil {
			return err
		}
		from = timeutil.StartOfDay(d)
		to = from.AddDate(0, 0, 1)

	case outlookSyncFrom != "" || outlookSyncTo != "":
		if outlookSyncTo != "" && outlookSyncFrom == "" {
			return fmt.Errorf("--from is required when --to is specified")
		}
		var err error
		from, err = timeutil.ParseDate(outlookSyncFrom)
		if err != nil {
			return err
		}
		from = timeutil.StartOfDay(from)
		to = timeutil.StartOfDay(now).AddDate(0, 0, 1)
		if outlookSyncTo != "" {
			t, err := timeutil.ParseDate(outlookSyncTo)
			if err != nil {
				return err
			}
			to = timeutil.StartOfDay(t).AddDate(0, 0, 1)
		}

	default:
		from = timeutil.StartOfDay(now)
		to = from.AddDate(0, 0, 1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	tag := outlookSyncTag
	if tag == "" {
		tag = cfg.Outlook.Tag
	}
	timezone := outlookSyncTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

	dryTag := ""
	if outlookSyncDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Importing Outlook events (%s → %s)%s...\n",
		timeutil.FormatDate(from), timeutil.FormatDate(to.AddDate(0, 0, -1)), dryTag)
	fmt.Println()

	ctx := context.Background()

	tok, oauthCfg, err := msgraph.Authenticate(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	client := msgraph.NewClient(ctx, tok, oauthCfg)

	events, err := client.GetCalendarView(ctx, from, to, timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	result, err := msgraph.Import(events, msgraph.Options{
		Base:     baseDir(),
		DryRun:   outlookSyncDryRun,
		Tag:      tag,
		Timezone: timezone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d imported\n", result.Imported)
	fmt.Printf("  %d skipped\n", result.Skipped)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
