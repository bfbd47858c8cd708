package service

import (
	"context"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/scheduler"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, enabledOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error

	AddMilestone(ctx context.Context, m *domain.Milestone) error
	Milestones(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	CompleteMilestone(ctx context.Context, id string) error
	RemoveMilestone(ctx context.Context, id string) error
}

type MeetingService interface {
	Schedule(ctx context.Context, m *domain.Meeting) error
	ListByDate(ctx context.Context, date string) ([]*domain.Meeting, error)
	ListForWeek(ctx context.Context, weekStart string) ([]*domain.Meeting, error)
	Cancel(ctx context.Context, id string) error
}

type SessionService interface {
	Log(ctx context.Context, s *domain.WorkSessionLog) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkSessionLog, error)
	Delete(ctx context.Context, id string) error
}

type BriefService interface {
	Add(ctx context.Context, b *domain.Brief) error
	ListByDate(ctx context.Context, date string) ([]*domain.Brief, error)
	Delete(ctx context.Context, id string) error
}

// WeekPlan is one fully materialized week: the windows and weighted items
// that produced it, the per-day block lists, and the capacity comparison.
type WeekPlan struct {
	WeekStart string
	Windows   []domain.DayWindow
	Items     []domain.WorkItem
	Days      []domain.DayPlan
	Capacity  scheduler.CapacityReport

	// Saved reports whether a persisted plan record backed this build,
	// as opposed to defaults derived from project records.
	Saved bool
}

type PlanService interface {
	Week(ctx context.Context, weekStart string) (*WeekPlan, error)
	Capacity(ctx context.Context, weekStart string) (scheduler.CapacityReport, error)
	SaveWeek(ctx context.Context, weekStart string, scenario domain.Scenario) error

	SetDayActive(ctx context.Context, weekStart, dayID string, active bool) error
	SetDayHours(ctx context.Context, weekStart, dayID string, startMinutes, endMinutes int) error
	SetDefaultHours(ctx context.Context, weekStart string, startMinutes, endMinutes int) error
	SetPriority(ctx context.Context, weekStart, projectID string, enabled bool, weeklyHours float64) error
	MarkDoneFrom(ctx context.Context, weekStart, projectID string, dayIndex int) error
}

type DayService interface {
	Blocks(ctx context.Context, date string) (*domain.DayPlan, error)
	Move(ctx context.Context, date string, from, to int) (*domain.DayPlan, error)
	EditBlock(ctx context.Context, date, blockID string, startMinutes, endMinutes int) (*domain.DayPlan, error)
}
