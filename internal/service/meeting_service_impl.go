package service

import (
	"context"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/google/uuid"
)

type meetingService struct {
	meetings repository.MeetingRepo
	projects repository.ProjectRepo
}

func NewMeetingService(meetings repository.MeetingRepo, projects repository.ProjectRepo) MeetingService {
	return &meetingService{meetings: meetings, projects: projects}
}

func (s *meetingService) Schedule(ctx context.Context, m *domain.Meeting) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.ProjectID != "" {
		if _, err := s.projects.GetByID(ctx, m.ProjectID); err != nil {
			return err
		}
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()
	return s.meetings.Create(ctx, m)
}

func (s *meetingService) ListByDate(ctx context.Context, date string) ([]*domain.Meeting, error) {
	return s.meetings.ListByDate(ctx, date)
}

func (s *meetingService) ListForWeek(ctx context.Context, weekStart string) ([]*domain.Meeting, error) {
	week, err := normalizeWeek(weekStart)
	if err != nil {
		return nil, err
	}
	dates := weekDates(week)
	return s.meetings.ListByDateRange(ctx, dates[0], dates[6])
}

func (s *meetingService) Cancel(ctx context.Context, id string) error {
	return s.meetings.Delete(ctx, id)
}
