package domain

import (
	"strconv"
	"time"
)

// ScheduleEvent is one entry of a produced plan: either a study session or a
// deadline reminder, discriminated by Kind.
type ScheduleEvent struct {
	Kind           EventKind
	AssignmentID   string
	AssignmentName string
	Weight         float64
	Deadline       time.Time
	Start          time.Time
	End            time.Time

	// Study sessions only.
	SessionIndex int
	SessionTotal int
	// Conflicted marks a session placed on its preferred slot after the
	// search horizon was exhausted. It may overlap other intervals.
	Conflicted bool
}

// IsStudy reports whether the event is a study session.
func (e ScheduleEvent) IsStudy() bool {
	return e.Kind == EventStudy
}

// Interval returns the event's time range.
func (e ScheduleEvent) Interval() Interval {
	return Interval{Start: e.Start, End: e.End}
}

// SessionLabel returns the 1-based "i/n" label of a study session.
func (e ScheduleEvent) SessionLabel() string {
	return strconv.Itoa(e.SessionIndex+1) + "/" + strconv.Itoa(e.SessionTotal)
}
