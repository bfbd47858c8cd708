package scheduler

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/horae/internal/domain"
)

const (
	// Lunch is a fixed policy block at 12:00-12:30, placed only when it
	// fits fully inside the day's window.
	LunchStartMinutes = 720
	LunchEndMinutes   = 750

	// SlotMinutes is the quantization unit for daily re-packing.
	SlotMinutes = 30
)

// WeekInput carries everything the weekly layout engine consumes.
// Windows must be the seven Monday-first weekday windows; Items are in
// priority order; Obligations maps day index to that day's meetings in
// insertion order.
type WeekInput struct {
	Windows     []domain.DayWindow
	Items       []domain.WorkItem
	Obligations map[int][]domain.FixedObligation
	DoneFromDay map[string]int // projectID -> first done day index
	Dates       []string       // optional YYYY-MM-DD per day index
}

// LayoutWeek materializes one DayPlan per active day, walking days in
// week order so each work block's cumulative progress counter carries
// forward across the week. Re-running on identical inputs yields an
// identical result.
func LayoutWeek(in WeekInput) []domain.DayPlan {
	quotas := dailyQuotas(in.Items, activeDayCount(in.Windows))
	cumulative := make(map[string]int)

	var plans []domain.DayPlan
	ordinal := 0
	for i, w := range in.Windows {
		if !w.Active {
			continue
		}
		date := ""
		if i < len(in.Dates) {
			date = in.Dates[i]
		}
		plans = append(plans, layoutDay(dayInput{
			window:        w,
			dayIndex:      i,
			activeOrdinal: ordinal,
			date:          date,
			items:         in.Items,
			quotas:        quotas,
			meetings:      in.Obligations[i],
			doneFromDay:   in.DoneFromDay,
		}, cumulative))
		ordinal++
	}
	return plans
}

func activeDayCount(windows []domain.DayWindow) int {
	n := 0
	for _, w := range windows {
		if w.Active {
			n++
		}
	}
	return n
}

// dailyQuotas splits each enabled item's weekly request evenly across the
// active days. The division stays in integer minutes: each active day gets
// the floor share and the first (weekly mod activeDays) days get one extra
// minute, so the week total is conserved exactly.
func dailyQuotas(items []domain.WorkItem, activeDays int) map[string][]int {
	quotas := make(map[string][]int, len(items))
	if activeDays == 0 {
		return quotas
	}
	for _, it := range items {
		if !it.Enabled || it.WeeklyMinutesRequested <= 0 {
			continue
		}
		base := it.WeeklyMinutesRequested / activeDays
		rem := it.WeeklyMinutesRequested % activeDays
		perDay := make([]int, activeDays)
		for d := range perDay {
			perDay[d] = base
			if d < rem {
				perDay[d]++
			}
		}
		quotas[it.ProjectID] = perDay
	}
	return quotas
}

type dayInput struct {
	window        domain.DayWindow
	dayIndex      int
	activeOrdinal int // position among active days; selects the quota slot
	date          string
	items         []domain.WorkItem
	quotas        map[string][]int
	meetings      []domain.FixedObligation
	doneFromDay   map[string]int
}

// segment is a contiguous run of unclaimed minutes inside the day window.
type segment struct {
	start, end int
}

func layoutDay(in dayInput, cumulative map[string]int) domain.DayPlan {
	dayStart := in.window.StartMinutes
	dayEnd := in.window.EndMinutes
	var blocks []domain.TimeBlock

	// Lunch goes in iff it fits fully; no partial lunch.
	fixed := make([]domain.FixedObligation, 0, len(in.meetings)+1)
	lunchPlaced := false
	if LunchStartMinutes >= dayStart && LunchEndMinutes <= dayEnd {
		fixed = append(fixed, domain.FixedObligation{
			ID:           "lunch-" + in.window.ID,
			Kind:         domain.ObligationLunch,
			Label:        "Lunch",
			StartMinutes: LunchStartMinutes,
			EndMinutes:   LunchEndMinutes,
		})
		lunchPlaced = true
	}

	// Meetings keep their clock times where possible and stack
	// sequentially on collision, in insertion order. A meeting whose
	// start lands at or past the day end is dropped for the day, not
	// errored.
	cursor := dayStart
	for _, m := range in.meetings {
		s := max(cursor, m.StartMinutes)
		if lunchPlaced && s < LunchEndMinutes && s+m.Duration() > LunchStartMinutes {
			s = LunchEndMinutes
		}
		if s >= dayEnd {
			continue
		}
		placed := m
		placed.StartMinutes = s
		placed.EndMinutes = s + m.Duration()
		fixed = append(fixed, placed)
		cursor = placed.EndMinutes
	}

	for _, o := range fixed {
		kind := domain.BlockMeeting
		if o.Kind == domain.ObligationLunch {
			kind = domain.BlockLunch
		}
		blocks = append(blocks, domain.TimeBlock{
			ID:           o.ID,
			Kind:         kind,
			Label:        o.Label,
			ProjectRef:   o.SourceID,
			StartMinutes: o.StartMinutes,
			EndMinutes:   o.EndMinutes,
		})
	}

	segments := freeSegments(dayStart, dayEnd, fixed)

	// Walk items in priority order, slicing each day quota across the free
	// segments left to right. Whatever does not fit lands past the day end
	// as a conserved, flagged overflow block.
	activeOrdinal := in.activeOrdinal
	segIdx := 0
	overflowCursor := dayEnd
	for _, it := range in.items {
		perDay, ok := in.quotas[it.ProjectID]
		if !ok || activeOrdinal >= len(perDay) {
			continue
		}
		remaining := perDay[activeOrdinal]
		slice := 0
		for remaining > 0 && segIdx < len(segments) {
			seg := &segments[segIdx]
			take := min(remaining, seg.end-seg.start)
			if take < 1 {
				segIdx++
				continue
			}
			cumulative[it.ProjectID] += take
			blocks = append(blocks, workBlock(it, in.window.ID, slice,
				seg.start, seg.start+take, cumulative[it.ProjectID]))
			seg.start += take
			remaining -= take
			slice++
			if seg.start >= seg.end {
				segIdx++
			}
		}
		if remaining > 0 {
			cumulative[it.ProjectID] += remaining
			b := workBlock(it, in.window.ID, slice,
				overflowCursor, overflowCursor+remaining, cumulative[it.ProjectID])
			b.Overflow = true
			blocks = append(blocks, b)
			overflowCursor += remaining
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartMinutes < blocks[j].StartMinutes
	})

	blocks = foldDone(blocks, in.doneFromDay, in.dayIndex, in.window.ID, dayStart, dayEnd)

	return domain.DayPlan{
		DayID:         in.window.ID,
		Label:         in.window.Label,
		Date:          in.date,
		DayIndex:      in.dayIndex,
		Blocks:        blocks,
		DayEndMinutes: dayEnd,
	}
}

func workBlock(it domain.WorkItem, dayID string, slice, start, end, cumAfter int) domain.TimeBlock {
	return domain.TimeBlock{
		ID:                     fmt.Sprintf("work-%s-%s-%d", it.ProjectID, dayID, slice),
		Kind:                   domain.BlockWork,
		Label:                  it.DisplayName,
		ProjectRef:             it.ProjectID,
		StartMinutes:           start,
		EndMinutes:             end,
		CumulativeMinutesAfter: cumAfter,
		TotalMinutesPlanned:    it.WeeklyMinutesRequested,
	}
}

// freeSegments returns the complement of the fixed obligations within
// [dayStart, dayEnd), sorted by time. Obligations are clipped to the
// window; they are non-overlapping by construction.
func freeSegments(dayStart, dayEnd int, fixed []domain.FixedObligation) []segment {
	sorted := make([]domain.FixedObligation, len(fixed))
	copy(sorted, fixed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinutes < sorted[j].StartMinutes
	})

	var segs []segment
	cursor := dayStart
	for _, o := range sorted {
		s := max(o.StartMinutes, dayStart)
		e := min(o.EndMinutes, dayEnd)
		if s > cursor {
			segs = append(segs, segment{start: cursor, end: s})
		}
		if e > cursor {
			cursor = e
		}
	}
	if cursor < dayEnd {
		segs = append(segs, segment{start: cursor, end: dayEnd})
	}
	return segs
}

// foldDone suppresses work blocks for projects marked done from this day
// index onward, replacing them with a single trailing free block spanning
// from the latest surviving non-free block's end to the day end. This is a
// display reduction over the computed blocks, not a re-allocation.
func foldDone(blocks []domain.TimeBlock, doneFrom map[string]int, dayIndex int, dayID string, dayStart, dayEnd int) []domain.TimeBlock {
	if len(doneFrom) == 0 {
		return blocks
	}
	kept := blocks[:0]
	suppressed := false
	for _, b := range blocks {
		if b.Kind == domain.BlockWork {
			if from, ok := doneFrom[b.ProjectRef]; ok && dayIndex >= from {
				suppressed = true
				continue
			}
		}
		kept = append(kept, b)
	}
	if !suppressed {
		return kept
	}
	freeStart := dayStart
	for _, b := range kept {
		if b.EndMinutes > freeStart && b.EndMinutes <= dayEnd {
			freeStart = b.EndMinutes
		}
	}
	if freeStart < dayEnd {
		kept = append(kept, domain.TimeBlock{
			ID:           "free-" + dayID,
			Kind:         domain.BlockFree,
			Label:        "Free",
			StartMinutes: freeStart,
			EndMinutes:   dayEnd,
		})
	}
	return kept
}
