package formatter

import (
	"fmt"

	"github.com/alexanderramin/horae/internal/domain"
)

// FormatProjectList renders projects with their weekly demand.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		state := StyleGreen.Render("on")
		name := p.Name
		if !p.Enabled {
			state = StyleDim.Render("off")
			name = StyleDim.Render(name)
		}
		rows = append(rows, []string{
			shortID(p.ID),
			name,
			p.Company,
			Hours(p.WeeklyMinutes()) + "/wk",
			state,
		})
	}
	return RenderTable([]string{"ID", "PROJECT", "COMPANY", "HOURS", ""}, rows)
}

// FormatMilestoneList renders a project's milestones.
func FormatMilestoneList(milestones []*domain.Milestone) string {
	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		mark := StyleDim.Render("·")
		title := m.Title
		if m.Done {
			mark = StyleGreen.Render("✓")
			title = StyleDim.Render(title)
		}
		rows = append(rows, []string{shortID(m.ID), mark, title, m.DueDate})
	}
	return RenderTable([]string{"ID", "", "MILESTONE", "DUE"}, rows)
}

// FormatMeetingList renders meetings with their clock times.
func FormatMeetingList(meetings []*domain.Meeting) string {
	rows := make([][]string, 0, len(meetings))
	for _, m := range meetings {
		rows = append(rows, []string{
			shortID(m.ID),
			m.Date,
			ClockRange(m.StartMinutes, m.StartMinutes+m.DurationMinutes),
			StylePurple.Render(m.Title),
		})
	}
	return RenderTable([]string{"ID", "DATE", "TIME", "MEETING"}, rows)
}

// FormatSessionList renders logged work sessions, newest first as listed.
func FormatSessionList(sessions []*domain.WorkSessionLog) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.StartedAt.Format(domain.DateLayout),
			fmt.Sprintf("%dm", s.Minutes),
			s.Note,
		})
	}
	return RenderTable([]string{"DATE", "LENGTH", "NOTE"}, rows)
}

// shortID abbreviates a UUID for display; resolution accepts prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
