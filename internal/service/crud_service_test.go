package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateAndToggle(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	svc := NewProjectService(e.projects, e.milestones)

	p := &domain.Project{Name: "Atlas", Company: "Initech", Enabled: true, WeeklyHours: 7.5}
	require.NoError(t, svc.Create(ctx, p))
	assert.NotEmpty(t, p.ID)

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atlas", fetched.Name)
	assert.Equal(t, 450, fetched.WeeklyMinutes())

	require.NoError(t, svc.SetEnabled(ctx, p.ID, false))
	fetched, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Enabled)

	err = svc.Create(ctx, &domain.Project{Name: ""})
	require.Error(t, err, "name required")
	err = svc.Create(ctx, &domain.Project{Name: "Neg", WeeklyHours: -1})
	require.Error(t, err)
}

func TestProjectService_Milestones(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	svc := NewProjectService(e.projects, e.milestones)
	p := testutil.MakeProject(t, e.projects, "Atlas", 10)

	m := &domain.Milestone{ProjectID: p.ID, Title: "Beta", DueDate: "2026-02-01"}
	require.NoError(t, svc.AddMilestone(ctx, m))

	listed, err := svc.Milestones(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Done)

	require.NoError(t, svc.CompleteMilestone(ctx, m.ID))
	listed, err = svc.Milestones(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, listed[0].Done)

	err = svc.AddMilestone(ctx, &domain.Milestone{ProjectID: p.ID, Title: "", DueDate: "2026-02-01"})
	require.Error(t, err)
	err = svc.AddMilestone(ctx, &domain.Milestone{ProjectID: p.ID, Title: "X", DueDate: "soon"})
	require.Error(t, err)
	err = svc.AddMilestone(ctx, &domain.Milestone{ProjectID: "ghost", Title: "X", DueDate: "2026-02-01"})
	require.Error(t, err, "unknown project")
}

func TestMeetingService_ScheduleAndWeekListing(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	svc := NewMeetingService(e.meetings, e.projects)

	m := &domain.Meeting{Date: "2026-01-06", Title: "Standup", StartMinutes: 600, DurationMinutes: 30}
	require.NoError(t, svc.Schedule(ctx, m))

	// Any date in the week resolves to the same listing.
	week, err := svc.ListForWeek(ctx, "2026-01-08")
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, m.ID, week[0].ID)

	err = svc.Schedule(ctx, &domain.Meeting{Date: "2026-01-06", Title: "Ghost sync",
		StartMinutes: 600, DurationMinutes: 30, ProjectID: "ghost"})
	require.Error(t, err, "unknown project reference")

	require.NoError(t, svc.Cancel(ctx, m.ID))
	day, err := svc.ListByDate(ctx, "2026-01-06")
	require.NoError(t, err)
	assert.Empty(t, day)
}

func TestSessionService_Log(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	svc := NewSessionService(e.sessions, e.projects)
	p := testutil.MakeProject(t, e.projects, "Atlas", 10)

	s := &domain.WorkSessionLog{ProjectID: p.ID, Minutes: 90, Note: "deep work"}
	require.NoError(t, svc.Log(ctx, s))
	assert.False(t, s.StartedAt.IsZero())

	listed, err := svc.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 90, listed[0].Minutes)

	err = svc.Log(ctx, &domain.WorkSessionLog{ProjectID: p.ID, Minutes: 0})
	require.Error(t, err)
	err = svc.Log(ctx, &domain.WorkSessionLog{ProjectID: "ghost", Minutes: 30})
	require.Error(t, err)
}

func TestBriefService_AddAndList(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	svc := NewBriefService(e.briefs)

	b := &domain.Brief{Date: "2026-01-05", Body: "client call moved to Thursday"}
	require.NoError(t, svc.Add(ctx, b))

	listed, err := svc.ListByDate(ctx, "2026-01-05")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "client call moved to Thursday", listed[0].Body)

	err = svc.Add(ctx, &domain.Brief{Date: "2026-01-05", Body: "   "})
	require.Error(t, err)
	err = svc.Add(ctx, &domain.Brief{Date: "yesterday", Body: "x"})
	require.Error(t, err)
}
