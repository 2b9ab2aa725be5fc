package domain

import "time"

// Interval is a time range with Start <= End. It describes both busy blocks
// imported from a calendar and placed study sessions.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two intervals intersect, treating both as
// half-open [Start, End).
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}
