package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectEnableCmd(app, true),
		newProjectEnableCmd(app, false),
		newProjectRemoveCmd(app),
		newMilestoneCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, company string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := projectForm(&name, &company, &hours); err != nil {
					return err
				}
			}

			p := &domain.Project{
				Name:        name,
				Company:     company,
				Enabled:     true,
				WeeklyHours: hours,
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s/wk)\n", p.Name, formatter.Hours(p.WeeklyMinutes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&company, "company", "", "Company or client name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Requested weekly hours")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), enabledOnly)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Println(formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "Only enabled projects")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, company string
	var hours float64

	cmd := &cobra.Command{
		Use:   "update PROJECT",
		Short: "Update a project's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("company") {
				p.Company = company
			}
			if cmd.Flags().Changed("hours") {
				p.WeeklyHours = hours
			}
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&company, "company", "", "New company")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New weekly hours")

	return cmd
}

func newProjectEnableCmd(app *App, enable bool) *cobra.Command {
	use, verb := "disable PROJECT", "Disabled"
	short := "Exclude a project from scheduling"
	if enable {
		use, verb = "enable PROJECT", "Enabled"
		short = "Include a project in scheduling"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetEnabled(ctx, id, enable); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", verb, args[0])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Delete a project and its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage project milestones",
	}

	var title, due string
	add := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m := &domain.Milestone{ProjectID: id, Title: title, DueDate: due}
			if err := app.Projects.AddMilestone(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Added milestone %s due %s\n", m.Title, m.DueDate)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "Milestone title")
	add.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("due")

	list := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			milestones, err := app.Projects.Milestones(ctx, id)
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Println("No milestones.")
				return nil
			}
			fmt.Println(formatter.FormatMilestoneList(milestones))
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a milestone as reached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Projects.CompleteMilestone(context.Background(), args[0])
		},
	}

	cmd.AddCommand(add, list, done)
	return cmd
}
