package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/horae/internal/cli"
	"github.com/alexanderramin/horae/internal/db"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/alexanderramin/horae/internal/service"
	"github.com/alexanderramin/horae/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Record storage: env var or default ~/.horae/horae.db
	dbPath := os.Getenv("HORAE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".horae", "horae.db")
	}

	// Plan and override storage: env var or default ~/.horae/data
	dataDir := os.Getenv("HORAE_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".horae", "data")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kv := store.NewDiskKV(dataDir)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	meetingRepo := repository.NewSQLiteMeetingRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	briefRepo := repository.NewSQLiteBriefRepo(database)

	planSvc := service.NewPlanService(projectRepo, milestoneRepo, meetingRepo, sessionRepo,
		store.NewPlanStore(kv))

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, milestoneRepo),
		Meetings: service.NewMeetingService(meetingRepo, projectRepo),
		Sessions: service.NewSessionService(sessionRepo, projectRepo),
		Briefs:   service.NewBriefService(briefRepo),
		Plan:     planSvc,
		Day:      service.NewDayService(planSvc, store.NewOverrideStore(kv)),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
