package domain

import "time"

type WorkSessionLog struct {
	ID        string
	ProjectID string
	StartedAt time.Time
	Minutes   int
	Note      string
	CreatedAt time.Time
}
