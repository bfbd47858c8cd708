package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	projects repository.ProjectRepo
}

func NewSessionService(sessions repository.SessionRepo, projects repository.ProjectRepo) SessionService {
	return &sessionService{sessions: sessions, projects: projects}
}

func (s *sessionService) Log(ctx context.Context, log *domain.WorkSessionLog) error {
	if log.Minutes <= 0 {
		return fmt.Errorf("session minutes must be positive, got %d", log.Minutes)
	}
	if _, err := s.projects.GetByID(ctx, log.ProjectID); err != nil {
		return err
	}
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if log.StartedAt.IsZero() {
		log.StartedAt = now
	}
	log.CreatedAt = now
	return s.sessions.Create(ctx, log)
}

func (s *sessionService) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkSessionLog, error) {
	return s.sessions.ListByProject(ctx, projectID)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
