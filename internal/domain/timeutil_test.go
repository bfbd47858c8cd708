package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"0:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"12:30", 750, false},
		{"24:01", 0, true},
		{"9:75", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"10:30xyz", 0, true},
		{"x10:30", 0, true},
		{"10:", 0, true},
		{"10", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatClock_OverflowKeepsCounting(t *testing.T) {
	assert.Equal(t, "17:00", FormatClock(1020))
	assert.Equal(t, "24:30", FormatClock(1470))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "5:00 PM", FormatClock12(1020))
	assert.Equal(t, "12:30 PM", FormatClock12(750))
	assert.Equal(t, "12:00 AM", FormatClock12(0))
}

func TestWeekMonday(t *testing.T) {
	// 2026-08-31 is a Monday.
	mon := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", WeekMonday(mon))

	wed := mon.AddDate(0, 0, 2)
	assert.Equal(t, "2026-08-31", WeekMonday(wed))

	sun := mon.AddDate(0, 0, 6)
	assert.Equal(t, "2026-08-31", WeekMonday(sun), "Sunday belongs to the Monday-anchored week")
}

func TestDayIndexOf(t *testing.T) {
	assert.Equal(t, 0, DayIndexOf("2026-08-31")) // Monday
	assert.Equal(t, 6, DayIndexOf("2026-09-06")) // Sunday
	assert.Equal(t, -1, DayIndexOf("not-a-date"))
}
