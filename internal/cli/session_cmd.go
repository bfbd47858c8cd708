package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and review work sessions",
	}

	var mins int
	var note string
	log := &cobra.Command{
		Use:   "log PROJECT",
		Short: "Log a finished work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s := &domain.WorkSessionLog{ProjectID: id, Minutes: mins, Note: note}
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Logged %dm on %s\n", s.Minutes, args[0])
			return nil
		},
	}
	log.Flags().IntVar(&mins, "mins", 0, "Session length in minutes")
	log.Flags().StringVar(&note, "note", "", "What got done")
	_ = log.MarkFlagRequired("mins")

	list := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's sessions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListByProject(ctx, id)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions logged.")
				return nil
			}
			fmt.Println(formatter.FormatSessionList(sessions))
			return nil
		},
	}

	cmd.AddCommand(log, list)
	return cmd
}
