package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/spf13/cobra"
)

func newMeetingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Manage fixed meetings",
	}
	cmd.AddCommand(
		newMeetingAddCmd(app),
		newMeetingListCmd(app),
		newMeetingRemoveCmd(app),
	)
	return cmd
}

func newMeetingAddCmd(app *App) *cobra.Command {
	var date, title, at, project string
	var mins int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if title == "" && app.interactive() {
				if err := meetingForm(&date, &title, &at, &mins); err != nil {
					return err
				}
			}
			start, err := domain.ParseClock(at)
			if err != nil {
				return err
			}
			m := &domain.Meeting{
				Date:            date,
				Title:           title,
				StartMinutes:    start,
				DurationMinutes: mins,
			}
			if project != "" {
				if m.ProjectID, err = resolveProjectID(ctx, app, project); err != nil {
					return err
				}
			}
			if err := app.Meetings.Schedule(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Scheduled %s on %s at %s\n", m.Title, m.Date, domain.FormatClock(m.StartMinutes))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Meeting date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "Meeting title")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&mins, "mins", 30, "Length in minutes")
	cmd.Flags().StringVar(&project, "project", "", "Related project (optional)")

	return cmd
}

func newMeetingListCmd(app *App) *cobra.Command {
	var week bool

	cmd := &cobra.Command{
		Use:   "list [DATE]",
		Short: "List meetings for a date or its week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date := time.Now().Format(domain.DateLayout)
			if len(args) == 1 {
				date = args[0]
			}

			var meetings []*domain.Meeting
			var err error
			if week {
				meetings, err = app.Meetings.ListForWeek(ctx, date)
			} else {
				meetings, err = app.Meetings.ListByDate(ctx, date)
			}
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				fmt.Println("No meetings.")
				return nil
			}
			fmt.Println(formatter.FormatMeetingList(meetings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "List the whole week")

	return cmd
}

func newMeetingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Cancel a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Meetings.Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Cancelled.")
			return nil
		},
	}
}
