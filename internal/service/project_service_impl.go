package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects   repository.ProjectRepo
	milestones repository.MilestoneRepo
}

func NewProjectService(projects repository.ProjectRepo, milestones repository.MilestoneRepo) ProjectService {
	return &projectService{projects: projects, milestones: milestones}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, enabledOnly bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, enabledOnly)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Enabled = enabled
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) AddMilestone(ctx context.Context, m *domain.Milestone) error {
	if m.Title == "" {
		return fmt.Errorf("milestone title is required")
	}
	if _, err := time.Parse(domain.DateLayout, m.DueDate); err != nil {
		return fmt.Errorf("milestone due date %q: expected YYYY-MM-DD", m.DueDate)
	}
	if _, err := s.projects.GetByID(ctx, m.ProjectID); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()
	return s.milestones.Create(ctx, m)
}

func (s *projectService) Milestones(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByProject(ctx, projectID)
}

func (s *projectService) CompleteMilestone(ctx context.Context, id string) error {
	return s.milestones.MarkDone(ctx, id)
}

func (s *projectService) RemoveMilestone(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}
