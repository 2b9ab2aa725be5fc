package app

import (
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

type BusyCalendarResponse struct {
	Intervals []domain.Interval
	// Warning is set when the document could not be read; Intervals is then empty.
	Warning *Warning
}

// BusyIntervalsFrom returns the intervals that have not ended before from.
func (r *BusyCalendarResponse) BusyIntervalsFrom(from time.Time) []domain.Interval {
	var out []domain.Interval
	for _, iv := range r.Intervals {
		if !iv.End.Before(from) {
			out = append(out, iv)
		}
	}
	return out
}
