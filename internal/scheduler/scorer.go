package scheduler

import (
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

// ScoreStrategy maps a project and its scheduling context to requested
// weekly minutes. The layout engine consumes the result as an opaque
// weighted demand; swapping the heuristics never touches the engine.
type ScoreStrategy func(p domain.Project, ctx ScoringContext) int

type ScoringWeights struct {
	MilestonePressure float64
	Staleness         float64
	MeetingLoad       float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		MilestonePressure: 1.0,
		Staleness:         0.5,
		MeetingLoad:       0.3,
	}
}

// ScoringContext carries per-project signals gathered from records.
type ScoringContext struct {
	Now                  time.Time
	DaysToNextMilestone  *int // nil when no open milestone
	DaysSinceLastSession *int // nil when never worked
	MeetingsThisWeek     int
	Weights              ScoringWeights
}

// DefaultStrategy starts from the project's configured weekly hours and
// nudges the request up for milestone pressure and staleness, down for
// meeting-heavy weeks. Results are rounded to 15-minute steps.
func DefaultStrategy(p domain.Project, ctx ScoringContext) int {
	base := float64(p.WeeklyMinutes())
	if base <= 0 {
		return 0
	}

	multiplier := 1.0
	multiplier += milestoneFactor(ctx) * ctx.Weights.MilestonePressure
	multiplier += stalenessFactor(ctx) * ctx.Weights.Staleness
	multiplier -= meetingFactor(ctx) * ctx.Weights.MeetingLoad
	if multiplier < 0.25 {
		multiplier = 0.25
	}

	minutes := int(base*multiplier + 0.5)
	return (minutes + 7) / 15 * 15
}

func milestoneFactor(ctx ScoringContext) float64 {
	if ctx.DaysToNextMilestone == nil {
		return 0
	}
	days := *ctx.DaysToNextMilestone
	switch {
	case days <= 0:
		return 0.5
	case days <= 3:
		return 0.35
	case days <= 7:
		return 0.2
	case days <= 14:
		return 0.1
	default:
		return 0
	}
}

func stalenessFactor(ctx ScoringContext) float64 {
	if ctx.DaysSinceLastSession == nil {
		return 0.2 // never worked: give it a push
	}
	days := *ctx.DaysSinceLastSession
	switch {
	case days >= 7:
		return 0.25
	case days >= 3:
		return 0.1
	default:
		return 0
	}
}

func meetingFactor(ctx ScoringContext) float64 {
	switch {
	case ctx.MeetingsThisWeek >= 8:
		return 0.3
	case ctx.MeetingsThisWeek >= 4:
		return 0.15
	default:
		return 0
	}
}
