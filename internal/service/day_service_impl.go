package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/scheduler"
	"github.com/alexanderramin/horae/internal/store"
)

type dayService struct {
	plans     PlanService
	overrides *store.OverrideStore
}

func NewDayService(plans PlanService, overrides *store.OverrideStore) DayService {
	return &dayService{plans: plans, overrides: overrides}
}

// dayState is the resolved view of one date: its computed blocks with any
// persisted manual order and time overrides already applied, plus the
// window that bounds re-packing.
type dayState struct {
	plan   domain.DayPlan
	window domain.DayWindow
}

func (s *dayService) resolve(ctx context.Context, date string) (*dayState, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	idx := domain.DayIndexOf(date)

	wp, err := s.plans.Week(ctx, domain.WeekMonday(t))
	if err != nil {
		return nil, err
	}
	if idx >= len(wp.Windows) {
		return nil, fmt.Errorf("no window for date %s", date)
	}
	window := wp.Windows[idx]

	var plan domain.DayPlan
	found := false
	for _, d := range wp.Days {
		if d.Date == date {
			plan = d
			found = true
			break
		}
	}
	if !found {
		// Inactive day: an empty plan, not an error.
		plan = domain.DayPlan{
			DayID:         window.ID,
			Label:         window.Label,
			Date:          date,
			DayIndex:      idx,
			DayEndMinutes: window.EndMinutes,
		}
	}

	// A persisted manual order rearranges the computed blocks; re-packing
	// then re-derives the flexible times for the new arrangement. Saved
	// time overrides are applied last and win over everything.
	if order := s.overrides.Order(date); len(order) > 0 {
		plan.Blocks = scheduler.ApplyOrder(plan.Blocks, order)
		plan.Blocks = scheduler.Repack(plan.Blocks, window.StartMinutes, window.EndMinutes, scheduler.SlotMinutes)
	}
	plan.Blocks = scheduler.ApplyOverrides(plan.Blocks, s.overrides.Overrides(date))

	return &dayState{plan: plan, window: window}, nil
}

func (s *dayService) Blocks(ctx context.Context, date string) (*domain.DayPlan, error) {
	st, err := s.resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	return &st.plan, nil
}

// Move applies array-move semantics to the day's block list, re-packs the
// flexible blocks around the locked anchors, and persists the resulting
// order. Re-packing rewrites every flexible block's times, so their stale
// manual overrides are dropped in the same step.
func (s *dayService) Move(ctx context.Context, date string, from, to int) (*domain.DayPlan, error) {
	st, err := s.resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	blocks := st.plan.Blocks
	if from < 0 || from >= len(blocks) || to < 0 || to >= len(blocks) {
		return nil, fmt.Errorf("move %d->%d out of range for %d blocks", from, to, len(blocks))
	}
	if blocks[from].Locked() {
		return nil, fmt.Errorf("%s is fixed and cannot be moved", blocks[from].Label)
	}

	moved := scheduler.MoveBlock(blocks, from, to)
	repacked := scheduler.Repack(moved, st.window.StartMinutes, st.window.EndMinutes, scheduler.SlotMinutes)

	order := make([]string, 0, len(repacked))
	var flexible []string
	for _, b := range repacked {
		order = append(order, b.ID)
		if !b.Locked() {
			flexible = append(flexible, b.ID)
		}
	}
	if err := s.overrides.SaveOrder(date, order); err != nil {
		return nil, err
	}
	if err := s.overrides.ClearOverrides(date, flexible); err != nil {
		return nil, err
	}

	st.plan.Blocks = repacked
	return &st.plan, nil
}

// EditBlock validates and persists a manual time override for one
// flexible block. The edit is clamped into the day window and rejected if
// it would overlap a locked block; on rejection the prior state stands.
func (s *dayService) EditBlock(ctx context.Context, date, blockID string, startMinutes, endMinutes int) (*domain.DayPlan, error) {
	st, err := s.resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	var target *domain.TimeBlock
	for i := range st.plan.Blocks {
		if st.plan.Blocks[i].ID == blockID {
			target = &st.plan.Blocks[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("no block %q on %s", blockID, date)
	}
	if target.Locked() {
		return nil, fmt.Errorf("%s is fixed and cannot be edited", target.Label)
	}

	ov, err := scheduler.ValidateEdit(st.plan.Blocks, blockID, startMinutes, endMinutes,
		st.window.StartMinutes, st.window.EndMinutes)
	if err != nil {
		return nil, err
	}
	if err := s.overrides.SaveOverride(date, ov); err != nil {
		return nil, err
	}

	target.StartMinutes = ov.StartMinutes
	target.EndMinutes = ov.EndMinutes
	return &st.plan, nil
}
