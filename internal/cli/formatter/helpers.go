package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ClockRange renders a block's interval as "09:00-10:30".
func ClockRange(startMinutes, endMinutes int) string {
	return domain.FormatClock(startMinutes) + "-" + domain.FormatClock(endMinutes)
}

// Hours renders minutes as a compact hour string: 90 -> "1.5h", 60 -> "1h".
func Hours(minutes int) string {
	s := fmt.Sprintf("%.2f", float64(minutes)/60)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "h"
}
