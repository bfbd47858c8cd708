package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// horaeHuhTheme returns a custom huh theme using the Gruvbox palette.
func horaeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateClock accepts a 24h HH:MM string.
func validateClock(s string) error {
	_, err := domain.ParseClock(s)
	return err
}

// validateDate accepts a YYYY-MM-DD string.
func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

// validateHours accepts a non-negative decimal hour count.
func validateHours(s string) error {
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 {
		return fmt.Errorf("expected hours, e.g. 7.5")
	}
	return nil
}

// clockInput returns a huh.Input for a HH:MM time field.
func clockInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "09:00"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateClock)
}

// projectForm collects a new project's fields interactively.
func projectForm(name, company *string, hours *float64) error {
	hoursStr := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(name),
			huh.NewInput().Title("Company").Value(company),
			huh.NewInput().Title("Weekly Hours").Placeholder("7.5").
				Value(&hoursStr).Validate(validateHours),
		),
	).WithTheme(horaeHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	h, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q", hoursStr)
	}
	*hours = h
	return nil
}

// meetingForm collects a new meeting's fields interactively.
func meetingForm(date, title, at *string, mins *int) error {
	minsStr := strconv.Itoa(*mins)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(title),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(date).Validate(validateDate),
			clockInput("Start Time", "10:00", at),
			huh.NewInput().Title("Minutes").Value(&minsStr).Validate(validatePositiveInt),
		),
	).WithTheme(horaeHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	n, err := strconv.Atoi(minsStr)
	if err != nil {
		return fmt.Errorf("invalid minutes %q", minsStr)
	}
	*mins = n
	return nil
}

// windowForm collects a day window's hours interactively.
func windowForm(start, end *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			clockInput("Day Start", "09:00", start),
			clockInput("Day End", "17:00", end),
		),
	).WithTheme(horaeHuhTheme()).WithShowHelp(false)
	return form.Run()
}

// blockEditForm collects a manual block time range interactively.
func blockEditForm(at, until *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			clockInput("New Start", "13:00", at),
			clockInput("New End", "14:30", until),
		),
	).WithTheme(horaeHuhTheme()).WithShowHelp(false)
	return form.Run()
}
