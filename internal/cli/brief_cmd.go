package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/spf13/cobra"
)

func newBriefCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Free-text daily notes",
	}

	var date string
	add := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a note for a day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Brief{Date: date, Body: strings.Join(args, " ")}
			if err := app.Briefs.Add(context.Background(), b); err != nil {
				return err
			}
			fmt.Printf("Noted for %s\n", b.Date)
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Note date (YYYY-MM-DD)")

	show := &cobra.Command{
		Use:   "show [DATE]",
		Short: "Show a day's notes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().Format(domain.DateLayout)
			if len(args) == 1 {
				day = args[0]
			}
			briefs, err := app.Briefs.ListByDate(context.Background(), day)
			if err != nil {
				return err
			}
			if len(briefs) == 0 {
				fmt.Println("No notes.")
				return nil
			}
			for _, b := range briefs {
				fmt.Printf("- %s\n", b.Body)
			}
			return nil
		},
	}

	cmd.AddCommand(add, show)
	return cmd
}
