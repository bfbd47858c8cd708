package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horae/internal/domain"
)

// FormatCapacity renders the weekly available-vs-requested comparison.
func FormatCapacity(availableMinutes, requestedMinutes, slackMinutes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available  %s\n", StyleFg.Render(Hours(availableMinutes)))
	fmt.Fprintf(&b, "Requested  %s\n", StyleFg.Render(Hours(requestedMinutes)))

	if slackMinutes < 0 {
		fmt.Fprintf(&b, "Slack      %s",
			StyleRed.Render(fmt.Sprintf("-%s (over capacity)", Hours(-slackMinutes))))
	} else {
		fmt.Fprintf(&b, "Slack      %s", StyleGreen.Render(Hours(slackMinutes)))
	}
	return RenderBox("capacity", b.String())
}

// FormatWindows renders the seven weekday windows with their hours.
func FormatWindows(windows []domain.DayWindow) string {
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		hours := ClockRange(w.StartMinutes, w.EndMinutes)
		state := StyleGreen.Render("on")
		if !w.Active {
			state = StyleDim.Render("off")
			hours = StyleDim.Render(hours)
		}
		note := ""
		if w.IsCustomOverride {
			note = StyleDim.Render("custom")
		}
		rows = append(rows, []string{w.Label, state, hours, note})
	}
	return RenderTable([]string{"DAY", "", "HOURS", ""}, rows)
}
