package cli

import (
	"os"

	"github.com/alexanderramin/horae/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Meetings service.MeetingService
	Sessions service.SessionService
	Briefs   service.BriefService
	Plan     service.PlanService
	Day      service.DayService

	// IsInteractive reports whether stdin is a terminal; forms and the
	// today view are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "horae" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "horae",
		Short: "Weekly work planner with drag-to-reorder days",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				os.Setenv("NO_COLOR", "1")
			}
		},
	}
	registerGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newProjectCmd(app),
		newMeetingCmd(app),
		newSessionCmd(app),
		newBriefCmd(app),
		newCapacityCmd(app),
		newWeekCmd(app),
		newDayCmd(app),
		newHoursCmd(app),
		newTodayCmd(app),
	)

	return root
}

func registerGlobalFlags(flags *pflag.FlagSet) {
	flags.Bool("no-color", false, "Disable styled output")
}
