package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avollmer/bujo/internal/config"
	"github.com/avollmer/bujo/internal/journal"
	"github.com/avollmer/bujo/internal/notify"
	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
	"github.com/avollmer/bujo/internal/view"
)

var (
	meetingAddDate     string
	meetingAddTime     string
	meetingAddDuration int
	meetingAddTags     []string
	meetingAddNotes    []string

	meetingListDate string

	meetingNotifyWindow int
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage meetings: add, list, notify",
}

var meetingAddCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a meeting",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMeetingAdd,
}

var meetingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings for a date (default today)",
	Args:  cobra.NoArgs,
	RunE:  runMeetingList,
}

var meetingNotifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send notifications for meetings starting soon",
	Args:  cobra.NoArgs,
	RunE:  runMeetingNotify,
}

func init() {
	meetingAddCmd.Flags().StringVarP(&meetingAddDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")
	meetingAddCmd.Flags().StringVarP(&meetingAddTime, "time", "t", "", "Start time HH:MM (24h)")
	meetingAddCmd.Flags().IntVarP(&meetingAddDuration, "duration", "u", journal.DefaultDuration, "Duration minutes")
	meetingAddCmd.Flags().StringArrayVarP(&meetingAddTags, "tag", "g", nil, "Tag (can repeat)")
	meetingAddCmd.Flags().StringArrayVarP(&meetingAddNotes, "note", "n", nil, "Note line (can repeat)")
	_ = meetingAddCmd.MarkFlagRequired("time")

	meetingListCmd.Flags().StringVarP(&meetingListDate, "date", "d", "", "Date YYYY-MM-DD (default: today)")

	meetingNotifyCmd.Flags().IntVarP(&meetingNotifyWindow, "window", "w", 0, "Lookahead window in minutes (default from config)")

	meetingCmd.AddCommand(meetingAddCmd)
	meetingCmd.AddCommand(meetingListCmd)
	meetingCmd.AddCommand(meetingNotifyCmd)
}

func runMeetingAdd(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(meetingAddDate)
	if err != nil {
		return err
	}
	start, ok := journal.ParseClock(meetingAddTime)
	if !ok {
		return fmt.Errorf("invalid time %q (expected HH:MM)", meetingAddTime)
	}
	if meetingAddDuration < 1 {
		return fmt.Errorf("invalid duration %d", meetingAddDuration)
	}

	entry := journal.Entry{
		Kind:     journal.Meeting,
		Start:    start,
		Duration: meetingAddDuration,
		Text:     strings.TrimSpace(strings.Join(args, " ")),
		Tags:     journal.NormalizeTags(meetingAddTags),
		Notes:    meetingAddNotes,
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

	fmt.Printf("Added meeting #%d to %s at %s\n", id, timeutil.FormatDate(date), start)
	return nil
}

func runMeetingList(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(meetingListDate)
	if err != nil {
		return err
	}

	day, err := storage.LoadDay(baseDir(), date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	meetings := view.Meetings(day.Entries())
	if len(meetings) == 0 {
		fmt.Printf("No meetings for %s\n", timeutil.FormatDate(date))
		return nil
	}
	for _, e := range meetings {
		fmt.Printf("%s %s (%s) %s\n",
			timeutil.FormatDate(date), e.Start, timeutil.FormatMinutes(e.Duration), e.Text)
	}
	return nil
}

func runMeetingNotify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	window := meetingNotifyWindow
	if window <= 0 {
		window = cfg.Notify.WindowMinutes
	}

	now := time.Now()
	base := baseDir()
	day, err := storage.LoadDay(base, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	state := notify.LoadState(base)
	sent := 0
	for _, e := range view.MeetingsWithin(day.Entries(), now, window) {
		key := timeutil.FormatDate(now) + "|" + e.Start.String()
		if state.Sent(key) {
			continue
		}
		in := e.Start.MinuteOfDay() - (now.Hour()*60 + now.Minute())
		msg := fmt.Sprintf("%s at %s (in %d min)", e.Text, e.Start, in)
		if err := notify.Send("Upcoming meeting", msg); err != nil {
			// Best-effort: report, keep the meeting unmarked for a retry.
			fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
			continue
		}
		state.MarkSent(key)
		sent++
	}

	if sent > 0 {
		if err := state.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return nil
}
