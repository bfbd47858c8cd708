package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/alexanderramin/horae/internal/scheduler"
	"github.com/alexanderramin/horae/internal/store"
)

type planService struct {
	projects   repository.ProjectRepo
	milestones repository.MilestoneRepo
	meetings   repository.MeetingRepo
	sessions   repository.SessionRepo
	plans      *store.PlanStore
	strategy   scheduler.ScoreStrategy
	weights    scheduler.ScoringWeights
	now        func() time.Time
}

func NewPlanService(
	projects repository.ProjectRepo,
	milestones repository.MilestoneRepo,
	meetings repository.MeetingRepo,
	sessions repository.SessionRepo,
	plans *store.PlanStore,
) PlanService {
	return &planService{
		projects:   projects,
		milestones: milestones,
		meetings:   meetings,
		sessions:   sessions,
		plans:      plans,
		strategy:   scheduler.DefaultStrategy,
		weights:    scheduler.DefaultWeights(),
		now:        time.Now,
	}
}

// normalizeWeek anchors any YYYY-MM-DD date to the Monday of its week.
func normalizeWeek(date string) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return domain.WeekMonday(t), nil
}

// weekDates returns the seven Monday-first dates of the week.
func weekDates(weekStart string) []string {
	t, err := time.Parse(domain.DateLayout, weekStart)
	if err != nil {
		return nil
	}
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = t.AddDate(0, 0, i).Format(domain.DateLayout)
	}
	return dates
}

func (s *planService) Week(ctx context.Context, weekStart string) (*WeekPlan, error) {
	week, err := normalizeWeek(weekStart)
	if err != nil {
		return nil, err
	}
	plan, saved, err := s.loadOrDefault(ctx, week)
	if err != nil {
		return nil, err
	}

	names, err := s.projectNames(ctx)
	if err != nil {
		return nil, err
	}
	items := plan.Items(names)

	dates := weekDates(week)
	obligations, err := s.weekObligations(ctx, dates)
	if err != nil {
		return nil, err
	}

	days := scheduler.LayoutWeek(scheduler.WeekInput{
		Windows:     plan.Days,
		Items:       items,
		Obligations: obligations,
		DoneFromDay: plan.ProjectDoneFromDayIndex,
		Dates:       dates,
	})

	return &WeekPlan{
		WeekStart: week,
		Windows:   plan.Days,
		Items:     items,
		Days:      days,
		Capacity:  scheduler.ComputeCapacity(plan.Days, items),
		Saved:     saved,
	}, nil
}

func (s *planService) Capacity(ctx context.Context, weekStart string) (scheduler.CapacityReport, error) {
	wp, err := s.Week(ctx, weekStart)
	if err != nil {
		return scheduler.CapacityReport{}, err
	}
	return wp.Capacity, nil
}

// SaveWeek materializes the week's plan record under the given scenario,
// freezing the current defaults and priorities so later project edits no
// longer shift it.
func (s *planService) SaveWeek(ctx context.Context, weekStart string, scenario domain.Scenario) error {
	week, err := normalizeWeek(weekStart)
	if err != nil {
		return err
	}
	if !domain.ValidScenarios[string(scenario)] {
		return fmt.Errorf("unknown scenario %q", scenario)
	}
	plan, _, err := s.loadOrDefault(ctx, week)
	if err != nil {
		return err
	}
	plan.Scenario = scenario
	return s.plans.Save(plan)
}

func (s *planService) SetDayActive(ctx context.Context, weekStart, dayID string, active bool) error {
	return s.mutate(ctx, weekStart, func(plan *store.SavedPlan) error {
		for i := range plan.Days {
			if plan.Days[i].ID == dayID {
				plan.Days[i].Active = active
				return nil
			}
		}
		return fmt.Errorf("unknown day %q", dayID)
	})
}

func (s *planService) SetDayHours(ctx context.Context, weekStart, dayID string, startMinutes, endMinutes int) error {
	return s.mutate(ctx, weekStart, func(plan *store.SavedPlan) error {
		for i := range plan.Days {
			if plan.Days[i].ID == dayID {
				plan.Days[i].SetStart(startMinutes)
				plan.Days[i].SetEnd(endMinutes)
				return nil
			}
		}
		return fmt.Errorf("unknown day %q", dayID)
	})
}

func (s *planService) SetDefaultHours(ctx context.Context, weekStart string, startMinutes, endMinutes int) error {
	return s.mutate(ctx, weekStart, func(plan *store.SavedPlan) error {
		plan.DefaultStartMinutes = startMinutes
		plan.DefaultEndMinutes = endMinutes
		domain.ApplyDefaults(plan.Days, startMinutes, endMinutes)
		return nil
	})
}

func (s *planService) SetPriority(ctx context.Context, weekStart, projectID string, enabled bool, weeklyHours float64) error {
	if weeklyHours < 0 {
		return fmt.Errorf("weekly hours must be >= 0, got %v", weeklyHours)
	}
	return s.mutate(ctx, weekStart, func(plan *store.SavedPlan) error {
		for i := range plan.Priorities {
			if plan.Priorities[i].ProjectID == projectID {
				plan.Priorities[i].Enabled = enabled
				plan.Priorities[i].WeeklyHours = weeklyHours
				return nil
			}
		}
		plan.Priorities = append(plan.Priorities, store.PlanPriority{
			ProjectID:   projectID,
			Enabled:     enabled,
			WeeklyHours: weeklyHours,
		})
		return nil
	})
}

func (s *planService) MarkDoneFrom(ctx context.Context, weekStart, projectID string, dayIndex int) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}
	return s.mutate(ctx, weekStart, func(plan *store.SavedPlan) error {
		if plan.ProjectDoneFromDayIndex == nil {
			plan.ProjectDoneFromDayIndex = map[string]int{}
		}
		plan.ProjectDoneFromDayIndex[projectID] = dayIndex
		return nil
	})
}

// mutate loads (or defaults) the week's plan, applies fn, and persists it.
func (s *planService) mutate(ctx context.Context, weekStart string, fn func(*store.SavedPlan) error) error {
	week, err := normalizeWeek(weekStart)
	if err != nil {
		return err
	}
	plan, _, err := s.loadOrDefault(ctx, week)
	if err != nil {
		return err
	}
	if err := fn(plan); err != nil {
		return err
	}
	return s.plans.Save(plan)
}

// loadOrDefault returns the persisted plan for the week, or derives a
// fresh one from project records when nothing is saved. The derived plan
// is not persisted; mutators save it after applying their change.
func (s *planService) loadOrDefault(ctx context.Context, weekStart string) (*store.SavedPlan, bool, error) {
	if plan := s.plans.Load(weekStart); plan != nil {
		return plan, true, nil
	}
	plan, err := s.defaultPlan(ctx, weekStart)
	if err != nil {
		return nil, false, err
	}
	return plan, false, nil
}

func (s *planService) defaultPlan(ctx context.Context, weekStart string) (*store.SavedPlan, error) {
	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	dates := weekDates(weekStart)
	meetingCount := 0
	if len(dates) == 7 {
		meetings, err := s.meetings.ListByDateRange(ctx, dates[0], dates[6])
		if err != nil {
			return nil, fmt.Errorf("listing meetings: %w", err)
		}
		meetingCount = len(meetings)
	}

	priorities := make([]store.PlanPriority, 0, len(projects))
	for _, p := range projects {
		sctx, err := s.scoringContext(ctx, p.ID, meetingCount)
		if err != nil {
			return nil, err
		}
		minutes := s.strategy(*p, sctx)
		priorities = append(priorities, store.PlanPriority{
			ProjectID:   p.ID,
			Enabled:     p.Enabled,
			WeeklyHours: float64(minutes) / 60,
		})
	}
	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].WeeklyHours > priorities[j].WeeklyHours
	})

	return &store.SavedPlan{
		WeekStartISO:            weekStart,
		Scenario:                domain.ScenarioNormal,
		Days:                    domain.DefaultWeek(),
		DefaultStartMinutes:     domain.DefaultStartMinutes,
		DefaultEndMinutes:       domain.DefaultEndMinutes,
		Priorities:              priorities,
		ProjectDoneFromDayIndex: map[string]int{},
	}, nil
}

// scoringContext gathers the per-project signals the score strategy reads:
// days to the nearest open milestone, days since the last logged session,
// and the week's overall meeting load.
func (s *planService) scoringContext(ctx context.Context, projectID string, meetingCount int) (scheduler.ScoringContext, error) {
	now := s.now().UTC()
	sctx := scheduler.ScoringContext{
		Now:              now,
		MeetingsThisWeek: meetingCount,
		Weights:          s.weights,
	}

	milestones, err := s.milestones.ListByProject(ctx, projectID)
	if err != nil {
		return sctx, fmt.Errorf("listing milestones for %s: %w", projectID, err)
	}
	for _, m := range milestones {
		if m.Done {
			continue
		}
		due, err := time.Parse(domain.DateLayout, m.DueDate)
		if err != nil {
			continue
		}
		days := int(due.Sub(now).Hours() / 24)
		if sctx.DaysToNextMilestone == nil || days < *sctx.DaysToNextMilestone {
			d := days
			sctx.DaysToNextMilestone = &d
		}
	}

	last, err := s.sessions.LastByProject(ctx, projectID)
	if err != nil {
		return sctx, fmt.Errorf("loading last session for %s: %w", projectID, err)
	}
	if last != nil {
		days := int(now.Sub(last.StartedAt).Hours() / 24)
		sctx.DaysSinceLastSession = &days
	}
	return sctx, nil
}

func (s *planService) projectNames(ctx context.Context) (map[string]string, error) {
	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (s *planService) weekObligations(ctx context.Context, dates []string) (map[int][]domain.FixedObligation, error) {
	if len(dates) != 7 {
		return map[int][]domain.FixedObligation{}, nil
	}
	meetings, err := s.meetings.ListByDateRange(ctx, dates[0], dates[6])
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	obligations := make(map[int][]domain.FixedObligation)
	for _, m := range meetings {
		idx := domain.DayIndexOf(m.Date)
		if idx < 0 {
			continue
		}
		obligations[idx] = append(obligations[idx], m.Obligation())
	}
	return obligations, nil
}
