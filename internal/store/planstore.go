package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

// PlanPriority is one work item's persisted weight inside a saved plan.
type PlanPriority struct {
	ProjectID   string  `json:"projectId"`
	Enabled     bool    `json:"enabled"`
	WeeklyHours float64 `json:"weeklyHours"`
}

// SavedPlan is the persisted weekly plan record, keyed by the Monday date
// of the week it describes.
type SavedPlan struct {
	WeekStartISO            string             `json:"weekStartIso"`
	Scenario                domain.Scenario    `json:"scenario"`
	Days                    []domain.DayWindow `json:"days"`
	DefaultStartMinutes     int                `json:"defaultStartMinutes"`
	DefaultEndMinutes       int                `json:"defaultEndMinutes"`
	ManualOrder             []string           `json:"manualOrder"`
	Priorities              []PlanPriority     `json:"priorities"`
	ProjectDoneFromDayIndex map[string]int     `json:"projectDoneFromDayIndex"`
	SavedAt                 time.Time          `json:"savedAt"`
}

// Items converts the plan's priorities into work items for the layout
// engine, preserving priority order.
func (p *SavedPlan) Items(names map[string]string) []domain.WorkItem {
	items := make([]domain.WorkItem, 0, len(p.Priorities))
	for _, pr := range p.Priorities {
		name := names[pr.ProjectID]
		if name == "" {
			name = pr.ProjectID
		}
		items = append(items, domain.WorkItem{
			ProjectID:              pr.ProjectID,
			DisplayName:            name,
			Enabled:                pr.Enabled,
			WeeklyMinutesRequested: int(pr.WeeklyHours*60 + 0.5),
		})
	}
	return items
}

// PlanStore reads and writes saved weekly plans through the injected KV.
type PlanStore struct {
	kv KV
}

func NewPlanStore(kv KV) *PlanStore {
	return &PlanStore{kv: kv}
}

func planKey(weekStart string) string {
	return "plan/" + weekStart
}

// Load returns the saved plan for a week, or nil when nothing (or nothing
// readable) is stored. Corrupt records degrade to absent.
func (s *PlanStore) Load(weekStart string) *SavedPlan {
	raw, ok := s.kv.Get(planKey(weekStart))
	if !ok {
		return nil
	}
	var plan SavedPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil
	}
	if plan.WeekStartISO == "" {
		plan.WeekStartISO = weekStart
	}
	return &plan
}

// Save persists the plan under its week key, stamping SavedAt.
func (s *PlanStore) Save(plan *SavedPlan) error {
	if plan.WeekStartISO == "" {
		return fmt.Errorf("saved plan needs a week start date")
	}
	plan.SavedAt = time.Now().UTC()
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := s.kv.Set(planKey(plan.WeekStartISO), string(raw)); err != nil {
		return fmt.Errorf("writing plan %s: %w", plan.WeekStartISO, err)
	}
	return nil
}
