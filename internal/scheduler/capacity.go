package scheduler

import "github.com/alexanderramin/horae/internal/domain"

// CapacityReport compares the week's available window minutes against the
// total requested minutes across enabled work items.
type CapacityReport struct {
	AvailableMinutes int
	RequestedMinutes int
	SlackMinutes     int
}

// OverCapacity reports whether more work is requested than the active
// windows can hold.
func (r CapacityReport) OverCapacity() bool {
	return r.SlackMinutes < 0
}

// ComputeCapacity sums available minutes over active windows and requested
// minutes over enabled items. Pure; cheap enough to re-run on every input
// change.
func ComputeCapacity(windows []domain.DayWindow, items []domain.WorkItem) CapacityReport {
	var report CapacityReport
	for _, w := range windows {
		if !w.Active {
			continue
		}
		report.AvailableMinutes += w.Span()
	}
	for _, it := range items {
		if !it.Enabled {
			continue
		}
		report.RequestedMinutes += it.WeeklyMinutesRequested
	}
	report.SlackMinutes = report.AvailableMinutes - report.RequestedMinutes
	return report
}
