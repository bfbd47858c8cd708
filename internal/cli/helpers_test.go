package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/alexanderramin/horae/internal/repository"
	"github.com/alexanderramin/horae/internal/service"
	"github.com/alexanderramin/horae/internal/store"
	"github.com/alexanderramin/horae/internal/testutil"
)

// newTestApp wires the full service stack over an in-memory database and
// KV, the way main does for the real binary.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := store.NewMemKV()

	projects := repository.NewSQLiteProjectRepo(database)
	milestones := repository.NewSQLiteMilestoneRepo(database)
	meetings := repository.NewSQLiteMeetingRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	briefs := repository.NewSQLiteBriefRepo(database)

	planSvc := service.NewPlanService(projects, milestones, meetings, sessions, store.NewPlanStore(kv))

	return &App{
		Projects:      service.NewProjectService(projects, milestones),
		Meetings:      service.NewMeetingService(meetings, projects),
		Sessions:      service.NewSessionService(sessions, projects),
		Briefs:        service.NewBriefService(briefs),
		Plan:          planSvc,
		Day:           service.NewDayService(planSvc, store.NewOverrideStore(kv)),
		IsInteractive: func() bool { return false },
	}
}

// runCommand executes one command through the Cobra tree, capturing both
// cobra output and direct fmt.Print writes.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}
