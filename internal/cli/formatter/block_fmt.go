package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horae/internal/domain"
)

// FormatDayPlan renders one day's block list as an aligned timeline.
func FormatDayPlan(plan *domain.DayPlan) string {
	header := StyleHeader.Render(plan.Label)
	if plan.Date != "" {
		header += StyleDim.Render("  " + plan.Date)
	}
	if len(plan.Blocks) == 0 {
		return header + "\n" + StyleDim.Render("  (no blocks)")
	}

	rows := make([][]string, 0, len(plan.Blocks))
	for i, b := range plan.Blocks {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprintf("%d", i)),
			ClockRange(b.StartMinutes, b.EndMinutes),
			BlockStyle(b).Render(BlockGlyph(b) + " " + b.Label),
			blockDetail(b),
		})
	}

	out := header + "\n" + RenderTable([]string{"#", "TIME", "BLOCK", ""}, rows)
	if over := plan.OverflowMinutes(); over > 0 {
		out += "\n" + StyleRed.Render(fmt.Sprintf("! %s past end of day", Hours(over)))
	}
	return out
}

func blockDetail(b domain.TimeBlock) string {
	switch {
	case b.Overflow:
		return StyleRed.Render("past day end")
	case b.Kind == domain.BlockWork && b.TotalMinutesPlanned > 0:
		pct := float64(b.CumulativeMinutesAfter) / float64(b.TotalMinutesPlanned)
		return fmt.Sprintf("%s %s of %s this week",
			RenderProgress(pct, 10),
			Hours(b.CumulativeMinutesAfter), Hours(b.TotalMinutesPlanned))
	default:
		return ""
	}
}

// FormatWeek renders every active day's plan separated by blank lines.
func FormatWeek(days []domain.DayPlan) string {
	if len(days) == 0 {
		return StyleDim.Render("No active days this week.")
	}
	parts := make([]string, 0, len(days))
	for i := range days {
		parts = append(parts, FormatDayPlan(&days[i]))
	}
	return strings.Join(parts, "\n\n")
}
