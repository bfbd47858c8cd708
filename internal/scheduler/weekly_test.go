package scheduler

import (
	"testing"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleDayWeek returns a week where only Monday is active, with the
// given window.
func singleDayWeek(start, end int) []domain.DayWindow {
	week := domain.DefaultWeek()
	for i := range week {
		week[i].Active = i == 0
		week[i].StartMinutes = start
		week[i].EndMinutes = end
	}
	return week
}

func blocksFor(plan domain.DayPlan, projectID string) []domain.TimeBlock {
	var out []domain.TimeBlock
	for _, b := range plan.Blocks {
		if b.Kind == domain.BlockWork && b.ProjectRef == projectID {
			out = append(out, b)
		}
	}
	return out
}

func sumDurations(blocks []domain.TimeBlock) int {
	total := 0
	for _, b := range blocks {
		total += b.Duration()
	}
	return total
}

func TestLayoutWeek_MeetingLunchAndOverflow(t *testing.T) {
	// 09:00-17:00, one 30-minute meeting at 10:00, two items wanting
	// 240 min on the single active day. Free time is 420 min, so the
	// second item overflows by 60 starting exactly at the day end.
	in := WeekInput{
		Windows: singleDayWeek(540, 1020),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 240},
			{ProjectID: "p-2", DisplayName: "Beta", Enabled: true, WeeklyMinutesRequested: 240},
		},
		Obligations: map[int][]domain.FixedObligation{
			0: {{ID: "meet-1", Kind: domain.ObligationMeeting, Label: "Standup", StartMinutes: 600, EndMinutes: 630}},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)
	plan := plans[0]

	var lunch, meeting *domain.TimeBlock
	for i := range plan.Blocks {
		switch plan.Blocks[i].Kind {
		case domain.BlockLunch:
			lunch = &plan.Blocks[i]
		case domain.BlockMeeting:
			meeting = &plan.Blocks[i]
		}
	}
	require.NotNil(t, lunch)
	assert.Equal(t, 720, lunch.StartMinutes)
	assert.Equal(t, 750, lunch.EndMinutes)
	require.NotNil(t, meeting)
	assert.Equal(t, 600, meeting.StartMinutes)
	assert.Equal(t, 630, meeting.EndMinutes)

	assert.Equal(t, 240, sumDurations(blocksFor(plan, "p-1")))
	assert.Equal(t, 240, sumDurations(blocksFor(plan, "p-2")))

	var overflow []domain.TimeBlock
	for _, b := range plan.Blocks {
		if b.Overflow {
			overflow = append(overflow, b)
		}
	}
	require.Len(t, overflow, 1)
	assert.Equal(t, 1020, overflow[0].StartMinutes, "overflow starts exactly at day end")
	assert.Equal(t, 60, overflow[0].Duration())
	assert.Equal(t, 60, plan.OverflowMinutes())

	assertNoOverlap(t, plan)
}

func TestLayoutWeek_LunchOmittedWhenWindowTooEarly(t *testing.T) {
	in := WeekInput{
		Windows: singleDayWeek(480, 700), // ends before 12:30
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 60},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)
	for _, b := range plans[0].Blocks {
		assert.NotEqual(t, domain.BlockLunch, b.Kind, "no partial lunch")
	}
}

func TestLayoutWeek_MeetingPastDayEndDropped(t *testing.T) {
	in := WeekInput{
		Windows: singleDayWeek(540, 1020),
		Obligations: map[int][]domain.FixedObligation{
			0: {{ID: "meet-late", Kind: domain.ObligationMeeting, Label: "Late", StartMinutes: 1050, EndMinutes: 1110}},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)
	for _, b := range plans[0].Blocks {
		assert.NotEqual(t, domain.BlockMeeting, b.Kind)
	}
}

func TestLayoutWeek_CollidingMeetingsStack(t *testing.T) {
	in := WeekInput{
		Windows: singleDayWeek(540, 1020),
		Obligations: map[int][]domain.FixedObligation{
			0: {
				{ID: "m-1", Kind: domain.ObligationMeeting, Label: "One", StartMinutes: 600, EndMinutes: 660},
				{ID: "m-2", Kind: domain.ObligationMeeting, Label: "Two", StartMinutes: 630, EndMinutes: 660},
			},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)

	var meetings []domain.TimeBlock
	for _, b := range plans[0].Blocks {
		if b.Kind == domain.BlockMeeting {
			meetings = append(meetings, b)
		}
	}
	require.Len(t, meetings, 2)
	assert.Equal(t, 600, meetings[0].StartMinutes)
	assert.Equal(t, 660, meetings[1].StartMinutes, "second meeting pushed past the first")
	assertNoOverlap(t, plans[0])
}

func TestLayoutWeek_MinuteConservationAcrossWeek(t *testing.T) {
	// Odd request that does not divide evenly across five days.
	in := WeekInput{
		Windows: domain.DefaultWeek(),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 1237},
			{ProjectID: "p-2", DisplayName: "Beta", Enabled: true, WeeklyMinutesRequested: 301},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 5)

	var p1, p2 int
	for _, plan := range plans {
		p1 += sumDurations(blocksFor(plan, "p-1"))
		p2 += sumDurations(blocksFor(plan, "p-2"))
		assertNoOverlap(t, plan)
	}
	assert.Equal(t, 1237, p1)
	assert.Equal(t, 301, p2)
}

func TestLayoutWeek_CumulativeCountersCarryForward(t *testing.T) {
	in := WeekInput{
		Windows: domain.DefaultWeek(),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 300},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 5)

	running := 0
	for _, plan := range plans {
		blocks := blocksFor(plan, "p-1")
		require.NotEmpty(t, blocks)
		for _, b := range blocks {
			running += b.Duration()
			assert.Equal(t, running, b.CumulativeMinutesAfter)
			assert.Equal(t, 300, b.TotalMinutesPlanned)
		}
	}
	assert.Equal(t, 300, running)
}

func TestLayoutWeek_DoneFromDayFoldsIntoFreeBlock(t *testing.T) {
	in := WeekInput{
		Windows: domain.DefaultWeek(),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 600},
		},
		DoneFromDay: map[string]int{"p-1": 2},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 5)

	for _, plan := range plans {
		work := blocksFor(plan, "p-1")
		var free []domain.TimeBlock
		for _, b := range plan.Blocks {
			if b.Kind == domain.BlockFree {
				free = append(free, b)
			}
		}
		if plan.DayIndex < 2 {
			assert.NotEmpty(t, work, "day %d keeps its work", plan.DayIndex)
			assert.Empty(t, free)
		} else {
			assert.Empty(t, work, "day %d is done", plan.DayIndex)
			require.Len(t, free, 1)
			assert.Equal(t, plan.DayEndMinutes, free[0].EndMinutes)
			last := free[0]
			for _, b := range plan.Blocks {
				if b.Kind != domain.BlockFree && b.EndMinutes <= plan.DayEndMinutes && b.EndMinutes > last.StartMinutes {
					t.Errorf("free block starts at %d before non-free block ending at %d", last.StartMinutes, b.EndMinutes)
				}
			}
		}
	}
}

func TestLayoutWeek_BlocksSortedByStart(t *testing.T) {
	in := WeekInput{
		Windows: singleDayWeek(540, 1020),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: true, WeeklyMinutesRequested: 180},
			{ProjectID: "p-2", DisplayName: "Beta", Enabled: true, WeeklyMinutesRequested: 180},
		},
		Obligations: map[int][]domain.FixedObligation{
			0: {{ID: "m-1", Kind: domain.ObligationMeeting, Label: "One", StartMinutes: 840, EndMinutes: 900}},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)
	blocks := plans[0].Blocks
	for i := 1; i < len(blocks); i++ {
		assert.LessOrEqual(t, blocks[i-1].StartMinutes, blocks[i].StartMinutes)
	}
}

func TestLayoutWeek_DisabledItemsGetNoBlocks(t *testing.T) {
	in := WeekInput{
		Windows: singleDayWeek(540, 1020),
		Items: []domain.WorkItem{
			{ProjectID: "p-1", DisplayName: "Alpha", Enabled: false, WeeklyMinutesRequested: 600},
		},
	}

	plans := LayoutWeek(in)
	require.Len(t, plans, 1)
	assert.Empty(t, blocksFor(plans[0], "p-1"))
}

// assertNoOverlap checks the no-overlap invariant: non-overflow blocks in
// one day never intersect. Overflow blocks are permitted past the day end.
func assertNoOverlap(t *testing.T, plan domain.DayPlan) {
	t.Helper()
	for i := 0; i < len(plan.Blocks); i++ {
		for j := i + 1; j < len(plan.Blocks); j++ {
			a, b := plan.Blocks[i], plan.Blocks[j]
			if a.Overflow || b.Overflow {
				continue
			}
			assert.False(t, a.Overlaps(b),
				"blocks %s [%d,%d) and %s [%d,%d) overlap",
				a.ID, a.StartMinutes, a.EndMinutes, b.ID, b.StartMinutes, b.EndMinutes)
		}
	}
}
