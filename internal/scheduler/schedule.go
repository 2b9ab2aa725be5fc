package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

const (
	// SessionDuration is the fixed length of every study session.
	SessionDuration = 2 * time.Hour
	// PreferredHour is the local hour every session is first tried at.
	PreferredHour = 14
	// MinSessions is the floor on sessions per assignment.
	MinSessions = 2
)

// ScheduleInput is everything one scheduling pass needs. Now fixes both the
// reference instant and the local time zone of the run.
type ScheduleInput struct {
	Now         time.Time
	Assignments []domain.Assignment
	Busy        []domain.Interval
}

// SessionCount returns max(2, ceil(weight/10)).
func SessionCount(weight float64) int {
	n := int(math.Ceil(weight / 10))
	if n < MinSessions {
		return MinSessions
	}
	return n
}

// DaysUntil returns max(1, ceil((deadline-now)/24h)).
func DaysUntil(deadline, now time.Time) int {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// BuildSchedule places study sessions for every assignment, earliest
// deadline first, and appends one deadline reminder per assignment. The
// returned events are sorted by start.
func BuildSchedule(input ScheduleInput) []domain.ScheduleEvent {
	if len(input.Assignments) == 0 {
		return nil
	}

	now := input.Now
	loc := now.Location()

	ordered := make([]domain.Assignment, len(input.Assignments))
	copy(ordered, input.Assignments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Deadline.Before(ordered[j].Deadline)
	})

	var occupancy Occupancy
	events := make([]domain.ScheduleEvent, 0, len(ordered)*(MinSessions+1))

	for _, a := range ordered {
		events = append(events, placeSessions(a, now, input.Busy, &occupancy)...)

		due := a.DeadlineAt(loc)
		events = append(events, domain.ScheduleEvent{
			Kind:           domain.EventDeadline,
			AssignmentID:   a.ID,
			AssignmentName: a.Name,
			Weight:         a.Weight,
			Deadline:       a.Deadline,
			Start:          due,
			End:            due,
		})
	}

	sortEvents(events)
	return events
}

func placeSessions(a domain.Assignment, now time.Time, busy []domain.Interval, occupancy *Occupancy) []domain.ScheduleEvent {
	daysUntil := DaysUntil(a.Deadline, now)
	count := SessionCount(a.Weight)
	spacing := daysUntil / count

	y, m, d := now.Date()
	sessions := make([]domain.ScheduleEvent, 0, count)
	for i := 0; i < count; i++ {
		preferred := time.Date(y, m, d+i*spacing, PreferredHour, 0, 0, 0, now.Location())

		start, ok := FindNextAvailableSlot(preferred, SessionDuration, occupancy.Intervals(), busy)
		slot := domain.Interval{Start: start, End: start.Add(SessionDuration)}
		occupancy.Add(slot)

		sessions = append(sessions, domain.ScheduleEvent{
			Kind:           domain.EventStudy,
			AssignmentID:   a.ID,
			AssignmentName: a.Name,
			Weight:         a.Weight,
			Deadline:       a.Deadline,
			Start:          slot.Start,
			End:            slot.End,
			SessionIndex:   i,
			SessionTotal:   count,
			Conflicted:     !ok,
		})
	}
	return sessions
}

func sortEvents(events []domain.ScheduleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

// ConflictCount returns the number of sessions that were placed on an
// occupied slot.
func ConflictCount(events []domain.ScheduleEvent) int {
	n := 0
	for _, e := range events {
		if e.Conflicted {
			n++
		}
	}
	return n
}
