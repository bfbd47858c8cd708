package domain

import (
	"fmt"
	"time"
)

type Meeting struct {
	ID              string
	Date            string // YYYY-MM-DD
	Title           string
	StartMinutes    int
	DurationMinutes int
	ProjectID       string
	CreatedAt       time.Time
}

func (m *Meeting) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("meeting title is required")
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return fmt.Errorf("meeting date %q: expected YYYY-MM-DD", m.Date)
	}
	if m.StartMinutes < 0 || m.StartMinutes >= DayMinutes {
		return fmt.Errorf("meeting start %d out of range", m.StartMinutes)
	}
	if m.DurationMinutes <= 0 {
		return fmt.Errorf("meeting duration must be positive, got %d", m.DurationMinutes)
	}
	return nil
}

// Obligation converts the meeting record into the fixed obligation the
// layout engine consumes.
func (m *Meeting) Obligation() FixedObligation {
	return FixedObligation{
		ID:           "meet-" + m.ID,
		Kind:         ObligationMeeting,
		Label:        m.Title,
		StartMinutes: m.StartMinutes,
		EndMinutes:   m.StartMinutes + m.DurationMinutes,
		SourceID:     m.ID,
	}
}
