package domain

// WorkItem is a project's weekly time demand as consumed by the layout
// engine. It is produced by a prioritization strategy upstream and is
// opaque here: the engine only reads the enabled flag and the requested
// minutes.
type WorkItem struct {
	ProjectID              string
	DisplayName            string
	CompanyName            string
	Enabled                bool
	WeeklyMinutesRequested int
}

// FixedObligation is an immutable time claim for one day: lunch or a
// meeting. The layout engine never moves one.
type FixedObligation struct {
	ID           string
	Kind         ObligationKind
	Label        string
	StartMinutes int
	EndMinutes   int
	SourceID     string
}

// Duration returns the obligation's length in minutes.
func (o FixedObligation) Duration() int {
	return o.EndMinutes - o.StartMinutes
}
