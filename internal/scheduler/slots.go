package scheduler

import (
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

// SearchHorizonDays bounds the forward search for a free slot.
const SearchHorizonDays = 60

// AnchorTime is a time of day tried by the fallback search.
type AnchorTime struct {
	Hour   int
	Minute int
}

// DailyAnchors are tried in order on every day of the search horizon.
var DailyAnchors = []AnchorTime{
	{Hour: 9},
	{Hour: 11},
	{Hour: 14},
	{Hour: 16},
	{Hour: 19},
}

// Occupancy accumulates the sessions placed during one scheduling pass.
type Occupancy struct {
	placed []domain.Interval
}

// Add records a placed interval.
func (o *Occupancy) Add(iv domain.Interval) {
	o.placed = append(o.placed, iv)
}

// Intervals returns the recorded intervals in placement order.
func (o *Occupancy) Intervals() []domain.Interval {
	return o.placed
}

func overlapsAny(candidate domain.Interval, sets [][]domain.Interval) bool {
	for _, set := range sets {
		for _, iv := range set {
			if candidate.Overlaps(iv) {
				return true
			}
		}
	}
	return false
}

// FindNextAvailableSlot returns the start of the first slot of the given
// duration that overlaps none of the occupied sets. The preferred start wins
// when free; otherwise each day from the preferred day onward tries the
// DailyAnchors before moving to the next day, up to SearchHorizonDays days.
// When nothing is free it returns preferred and false.
func FindNextAvailableSlot(preferred time.Time, duration time.Duration, occupied ...[]domain.Interval) (time.Time, bool) {
	if !overlapsAny(domain.Interval{Start: preferred, End: preferred.Add(duration)}, occupied) {
		return preferred, true
	}

	loc := preferred.Location()
	y, m, d := preferred.Date()
	for offset := 0; offset < SearchHorizonDays; offset++ {
		for _, anchor := range DailyAnchors {
			start := time.Date(y, m, d+offset, anchor.Hour, anchor.Minute, 0, 0, loc)
			if !overlapsAny(domain.Interval{Start: start, End: start.Add(duration)}, occupied) {
				return start, true
			}
		}
	}

	return preferred, false
}
