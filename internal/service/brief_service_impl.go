package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/google/uuid"
)

type briefService struct {
	briefs repository.BriefRepo
}

func NewBriefService(briefs repository.BriefRepo) BriefService {
	return &briefService{briefs: briefs}
}

func (s *briefService) Add(ctx context.Context, b *domain.Brief) error {
	if strings.TrimSpace(b.Body) == "" {
		return fmt.Errorf("brief body is required")
	}
	if _, err := time.Parse(domain.DateLayout, b.Date); err != nil {
		return fmt.Errorf("brief date %q: expected YYYY-MM-DD", b.Date)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().UTC()
	return s.briefs.Create(ctx, b)
}

func (s *briefService) ListByDate(ctx context.Context, date string) ([]*domain.Brief, error) {
	return s.briefs.ListByDate(ctx, date)
}

func (s *briefService) Delete(ctx context.Context, id string) error {
	return s.briefs.Delete(ctx, id)
}
