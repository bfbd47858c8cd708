package service

import (
	"testing"

	"github.com/alexanderramin/horae/internal/repository"
	"github.com/alexanderramin/horae/internal/store"
	"github.com/alexanderramin/horae/internal/testutil"
)

// env bundles the wired repositories, stores, and services over an
// in-memory database and KV, mirroring how main assembles them.
type env struct {
	projects   repository.ProjectRepo
	milestones repository.MilestoneRepo
	meetings   repository.MeetingRepo
	sessions   repository.SessionRepo
	briefs     repository.BriefRepo

	plans     *store.PlanStore
	overrides *store.OverrideStore

	planSvc PlanService
	daySvc  DayService
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := store.NewMemKV()

	e := &env{
		projects:   repository.NewSQLiteProjectRepo(database),
		milestones: repository.NewSQLiteMilestoneRepo(database),
		meetings:   repository.NewSQLiteMeetingRepo(database),
		sessions:   repository.NewSQLiteSessionRepo(database),
		briefs:     repository.NewSQLiteBriefRepo(database),
		plans:      store.NewPlanStore(kv),
		overrides:  store.NewOverrideStore(kv),
	}
	e.planSvc = NewPlanService(e.projects, e.milestones, e.meetings, e.sessions, e.plans)
	e.daySvc = NewDayService(e.planSvc, e.overrides)
	return e
}
