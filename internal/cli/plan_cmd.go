package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/spf13/cobra"
)

// argOrToday returns the first positional argument, or today's date.
func argOrToday(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return time.Now().Format(domain.DateLayout)
}

func newCapacityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity [DATE]",
		Short: "Compare available hours against requested hours for a week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Plan.Capacity(context.Background(), argOrToday(args))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCapacity(
				report.AvailableMinutes, report.RequestedMinutes, report.SlackMinutes))
			return nil
		},
	}
}

func newWeekCmd(app *App) *cobra.Command {
	var save bool
	var scenario string
	var done string
	var doneFrom int

	cmd := &cobra.Command{
		Use:   "week [DATE]",
		Short: "Show the weekly schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date := argOrToday(args)

			if done != "" {
				id, err := resolveProjectID(ctx, app, done)
				if err != nil {
					return err
				}
				if err := app.Plan.MarkDoneFrom(ctx, date, id, doneFrom); err != nil {
					return err
				}
			}
			if save {
				if err := app.Plan.SaveWeek(ctx, date, domain.Scenario(scenario)); err != nil {
					return err
				}
			}

			wp, err := app.Plan.Week(ctx, date)
			if err != nil {
				return err
			}

			header := formatter.StyleHeader.Render("Week of " + wp.WeekStart)
			if wp.Saved {
				header += formatter.StyleDim.Render("  (saved)")
			}
			fmt.Println(header)
			fmt.Println()
			fmt.Println(formatter.FormatWeek(wp.Days))
			if wp.Capacity.OverCapacity() {
				fmt.Println()
				fmt.Println(formatter.StyleRed.Render(fmt.Sprintf(
					"Over capacity by %s; trailing work spills past day ends.",
					formatter.Hours(-wp.Capacity.SlackMinutes))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Persist this week's plan")
	cmd.Flags().StringVar(&scenario, "scenario", string(domain.ScenarioNormal),
		"Scenario to record with --save: normal, heavy_week, or light_week")
	cmd.Flags().StringVar(&done, "done", "", "Mark a project done for the rest of the week")
	cmd.Flags().IntVar(&doneFrom, "from", 0, "First day index the project is done (with --done)")

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Inspect and rearrange one day",
	}
	cmd.AddCommand(
		newDayShowCmd(app),
		newDayMoveCmd(app),
		newDayEditCmd(app),
	)
	return cmd
}

func newDayShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [DATE]",
		Short: "Show a day's blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Day.Blocks(context.Background(), argOrToday(args))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDayPlan(plan))
			return nil
		},
	}
}

func newDayMoveCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move a block to a new position and re-pack the day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to int
			if _, err := fmt.Sscanf(args[0], "%d", &from); err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			if _, err := fmt.Sscanf(args[1], "%d", &to); err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			plan, err := app.Day.Move(context.Background(), date, from, to)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDayPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Day to rearrange (YYYY-MM-DD)")

	return cmd
}

func newDayEditCmd(app *App) *cobra.Command {
	var date, at, until string

	cmd := &cobra.Command{
		Use:   "edit BLOCK",
		Short: "Manually set one block's times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if at == "" && until == "" && app.interactive() {
				if err := blockEditForm(&at, &until); err != nil {
					return err
				}
			}
			start, err := domain.ParseClock(at)
			if err != nil {
				return err
			}
			end, err := domain.ParseClock(until)
			if err != nil {
				return err
			}
			plan, err := app.Day.EditBlock(context.Background(), date, args[0], start, end)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDayPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Day the block is on (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&until, "until", "", "New end time (HH:MM)")

	return cmd
}

func newHoursCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Configure working hours",
	}

	var week string
	cmd.PersistentFlags().StringVar(&week, "week", time.Now().Format(domain.DateLayout),
		"Any date within the week to configure")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the week's windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			wp, err := app.Plan.Week(context.Background(), week)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWindows(wp.Windows))
			return nil
		},
	}

	var start, end string
	set := &cobra.Command{
		Use:   "set DAY",
		Short: "Set one day's hours (e.g. horae hours set mon --start 08:00 --end 16:00)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" && end == "" && app.interactive() {
				if err := windowForm(&start, &end); err != nil {
					return err
				}
			}
			s, err := domain.ParseClock(start)
			if err != nil {
				return err
			}
			e, err := domain.ParseClock(end)
			if err != nil {
				return err
			}
			return app.Plan.SetDayHours(context.Background(), week, args[0], s, e)
		},
	}
	set.Flags().StringVar(&start, "start", "", "Window start (HH:MM)")
	set.Flags().StringVar(&end, "end", "", "Window end (HH:MM)")

	var dstart, dend string
	defaults := &cobra.Command{
		Use:   "default",
		Short: "Set default hours for all non-customized days",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseClock(dstart)
			if err != nil {
				return err
			}
			e, err := domain.ParseClock(dend)
			if err != nil {
				return err
			}
			return app.Plan.SetDefaultHours(context.Background(), week, s, e)
		},
	}
	defaults.Flags().StringVar(&dstart, "start", "", "Default start (HH:MM)")
	defaults.Flags().StringVar(&dend, "end", "", "Default end (HH:MM)")
	_ = defaults.MarkFlagRequired("start")
	_ = defaults.MarkFlagRequired("end")

	on := &cobra.Command{
		Use:   "on DAY",
		Short: "Activate a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Plan.SetDayActive(context.Background(), week, args[0], true)
		},
	}
	off := &cobra.Command{
		Use:   "off DAY",
		Short: "Deactivate a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Plan.SetDayActive(context.Background(), week, args[0], false)
		},
	}

	cmd.AddCommand(show, set, defaults, on, off)
	return cmd
}
