package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/google/uuid"
)

// MakeProject inserts a project with sensible defaults and returns it.
func MakeProject(t *testing.T, repo repository.ProjectRepo, name string, weeklyHours float64) *domain.Project {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Enabled:     true,
		WeeklyHours: weeklyHours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("creating fixture project %s: %v", name, err)
	}
	return p
}

// MakeMeeting inserts a meeting on the given date.
func MakeMeeting(t *testing.T, repo repository.MeetingRepo, date, title string, startMinutes, durationMinutes int) *domain.Meeting {
	t.Helper()
	m := &domain.Meeting{
		ID:              uuid.NewString(),
		Date:            date,
		Title:           title,
		StartMinutes:    startMinutes,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("creating fixture meeting %s: %v", title, err)
	}
	return m
}
