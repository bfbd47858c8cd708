package domain

import "time"

// Brief is a free-text daily note. Stored verbatim; no parsing.
type Brief struct {
	ID        string
	Date      string // YYYY-MM-DD
	Body      string
	CreatedAt time.Time
}
