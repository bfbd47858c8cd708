package repository

import (
	"context"

	"github.com/alexanderramin/horae/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, enabledOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type MeetingRepo interface {
	Create(ctx context.Context, m *domain.Meeting) error
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Meeting, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSessionLog) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkSessionLog, error)
	LastByProject(ctx context.Context, projectID string) (*domain.WorkSessionLog, error)
	Delete(ctx context.Context, id string) error
}

type BriefRepo interface {
	Create(ctx context.Context, b *domain.Brief) error
	ListByDate(ctx context.Context, date string) ([]*domain.Brief, error)
	Delete(ctx context.Context, id string) error
}
