package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Company     string
	Enabled     bool
	WeeklyHours float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields a user can set directly.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.WeeklyHours < 0 {
		return fmt.Errorf("weekly hours must be >= 0, got %v", p.WeeklyHours)
	}
	return nil
}

// WeeklyMinutes converts the requested hours to whole minutes once, at
// the boundary; all scheduling math downstream stays in integer minutes.
func (p *Project) WeeklyMinutes() int {
	return int(p.WeeklyHours*60 + 0.5)
}

type Milestone struct {
	ID        string
	ProjectID string
	Title     string
	DueDate   string // YYYY-MM-DD
	Done      bool
	CreatedAt time.Time
}
