package domain

// TimeBlock is one scheduled interval within a day. Work and free blocks
// are flexible; lunch and meeting blocks are locked to their times.
type TimeBlock struct {
	ID           string
	Kind         BlockKind
	Label        string
	ProjectRef   string
	StartMinutes int
	EndMinutes   int

	// Progress counters for "X of Y hours" readouts on work blocks.
	CumulativeMinutesAfter int
	TotalMinutesPlanned    int

	// Overflow marks a block pushed past the day's nominal end because
	// the requested minutes exceeded the window. Minutes are conserved
	// rather than dropped.
	Overflow bool
}

// Duration returns the block's length in minutes.
func (b TimeBlock) Duration() int {
	return b.EndMinutes - b.StartMinutes
}

// Locked reports whether the layout engine must leave this block's time
// untouched.
func (b TimeBlock) Locked() bool {
	return b.Kind == BlockLunch || b.Kind == BlockMeeting
}

// Overlaps reports whether two half-open block intervals intersect.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.StartMinutes < other.EndMinutes && other.StartMinutes < b.EndMinutes
}

// DayPlan is one day's materialized block list. Plans are rebuilt from
// inputs on every pass and are not persisted directly.
type DayPlan struct {
	DayID         string
	Label         string
	Date          string
	DayIndex      int
	Blocks        []TimeBlock
	DayEndMinutes int
}

// OverflowMinutes sums the duration of blocks pushed past the day end.
func (p DayPlan) OverflowMinutes() int {
	total := 0
	for _, b := range p.Blocks {
		if b.Overflow {
			total += b.Duration()
		}
	}
	return total
}

// BlockOverride is a persisted manual time edit for one block, keyed by
// date in the override store. Overrides referencing block IDs absent from
// a freshly computed set are silently ignored.
type BlockOverride struct {
	BlockID      string `json:"blockId"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}
