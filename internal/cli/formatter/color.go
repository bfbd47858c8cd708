package formatter

import (
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BlockStyle returns the style for a time block's label by kind. Overflow
// blocks render red regardless of kind.
func BlockStyle(b domain.TimeBlock) lipgloss.Style {
	if b.Overflow {
		return StyleRed
	}
	switch b.Kind {
	case domain.BlockWork:
		return StyleGreen
	case domain.BlockMeeting:
		return StylePurple
	case domain.BlockLunch:
		return StyleYellow
	default:
		return StyleDim
	}
}

// BlockGlyph returns the one-character marker shown before a block label.
func BlockGlyph(b domain.TimeBlock) string {
	if b.Overflow {
		return "!"
	}
	switch b.Kind {
	case domain.BlockWork:
		return "●"
	case domain.BlockMeeting:
		return "◆"
	case domain.BlockLunch:
		return "○"
	default:
		return "·"
	}
}
