package scheduler

import (
	"testing"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeCapacity_OverCapacity(t *testing.T) {
	// 5 active days x 480 min = 2400 available; 3000 requested.
	windows := domain.DefaultWeek()
	items := []domain.WorkItem{
		{ProjectID: "p-1", Enabled: true, WeeklyMinutesRequested: 1800},
		{ProjectID: "p-2", Enabled: true, WeeklyMinutesRequested: 1200},
	}

	report := ComputeCapacity(windows, items)

	assert.Equal(t, 2400, report.AvailableMinutes)
	assert.Equal(t, 3000, report.RequestedMinutes)
	assert.Equal(t, -600, report.SlackMinutes)
	assert.True(t, report.OverCapacity())
}

func TestComputeCapacity_IgnoresInactiveAndDisabled(t *testing.T) {
	windows := domain.DefaultWeek()
	windows[5].Active = true // Saturday on: +480
	windows[0].Active = false

	items := []domain.WorkItem{
		{ProjectID: "p-1", Enabled: true, WeeklyMinutesRequested: 600},
		{ProjectID: "p-2", Enabled: false, WeeklyMinutesRequested: 9999},
	}

	report := ComputeCapacity(windows, items)

	assert.Equal(t, 2400, report.AvailableMinutes)
	assert.Equal(t, 600, report.RequestedMinutes)
	assert.Equal(t, 1800, report.SlackMinutes)
	assert.False(t, report.OverCapacity())
}

func TestComputeCapacity_EmptyInputs(t *testing.T) {
	report := ComputeCapacity(nil, nil)

	assert.Zero(t, report.AvailableMinutes)
	assert.Zero(t, report.RequestedMinutes)
	assert.Zero(t, report.SlackMinutes)
	assert.False(t, report.OverCapacity())
}
