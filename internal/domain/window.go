package domain

// Minutes-since-midnight bounds and the default working window.
const (
	DayMinutes          = 1440
	DefaultStartMinutes = 540  // 09:00
	DefaultEndMinutes   = 1020 // 17:00
	minWindowSpan       = 60
)

// DayWindow describes one weekday's working hours as a half-open
// [StartMinutes, EndMinutes) range in minutes since midnight.
type DayWindow struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	Active           bool   `json:"active"`
	StartMinutes     int    `json:"startMinutes"`
	EndMinutes       int    `json:"endMinutes"`
	IsCustomOverride bool   `json:"isCustomOverride"`
}

// Span returns the window's length in minutes.
func (w DayWindow) Span() int {
	return w.EndMinutes - w.StartMinutes
}

// SetStart clamps m into [0, 1440] and applies it as the window start.
// If the edit would make the window degenerate or inverted, the end is
// pushed to start+60 (capped at 1440) so edits always leave a usable span.
func (w *DayWindow) SetStart(m int) {
	s := clampMinute(m)
	w.StartMinutes = s
	if w.EndMinutes <= s {
		w.EndMinutes = min(DayMinutes, s+minWindowSpan)
		if w.EndMinutes <= w.StartMinutes {
			w.StartMinutes = w.EndMinutes - minWindowSpan
		}
	}
	w.IsCustomOverride = true
}

// SetEnd clamps m into [0, 1440] and applies it as the window end,
// pulling the start back to end-60 (floored at 0) when the edit would
// invert the window.
func (w *DayWindow) SetEnd(m int) {
	e := clampMinute(m)
	w.EndMinutes = e
	if e <= w.StartMinutes {
		w.StartMinutes = max(0, e-minWindowSpan)
		if w.EndMinutes <= w.StartMinutes {
			w.EndMinutes = w.StartMinutes + minWindowSpan
		}
	}
	w.IsCustomOverride = true
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > DayMinutes {
		return DayMinutes
	}
	return m
}

// DefaultWeek returns the seven weekday windows in Monday-first scheduling
// order: 09:00-17:00 Mon-Fri, Sat and Sun present but inactive. Display
// layers may reorder to Sunday-first; day indexes always follow this order.
func DefaultWeek() []DayWindow {
	days := []struct {
		id    string
		label string
	}{
		{"mon", "Monday"},
		{"tue", "Tuesday"},
		{"wed", "Wednesday"},
		{"thu", "Thursday"},
		{"fri", "Friday"},
		{"sat", "Saturday"},
		{"sun", "Sunday"},
	}
	week := make([]DayWindow, 0, len(days))
	for i, d := range days {
		week = append(week, DayWindow{
			ID:           d.id,
			Label:        d.label,
			Active:       i < 5,
			StartMinutes: DefaultStartMinutes,
			EndMinutes:   DefaultEndMinutes,
		})
	}
	return week
}

// ApplyDefaults sets start/end on every window whose hours have not been
// individually overridden. Overridden days keep their custom hours.
func ApplyDefaults(week []DayWindow, startMinutes, endMinutes int) {
	for i := range week {
		if week[i].IsCustomOverride {
			continue
		}
		week[i].StartMinutes = clampMinute(startMinutes)
		week[i].EndMinutes = clampMinute(endMinutes)
		if week[i].EndMinutes <= week[i].StartMinutes {
			week[i].EndMinutes = min(DayMinutes, week[i].StartMinutes+minWindowSpan)
		}
	}
}
