package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the local-calendar date format used in all persisted keys.
const DateLayout = "2006-01-02"

// ParseClock parses a 24h "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > DayMinutes {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as 24h "HH:MM". Values past
// 1440 (overflow blocks) keep counting: 1470 renders as "24:30".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatClock12 renders minutes since midnight in 12h form for read-only
// display. Overflow values wrap into the next day's clock.
func FormatClock12(m int) string {
	t := time.Date(2000, 1, 1, 0, m, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// WeekMonday returns the Monday of t's local week as a YYYY-MM-DD string.
// Weeks anchor on Monday even though some displays list Sunday first.
func WeekMonday(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// DayIndexOf returns the Monday-first day index of a YYYY-MM-DD date,
// or -1 if the date does not parse.
func DayIndexOf(date string) int {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return -1
	}
	return (int(t.Weekday()) + 6) % 7
}
