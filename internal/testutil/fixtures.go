package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

var testIDCounter atomic.Int64

// Loc is the fixed zone tests schedule in, so results do not depend on the
// machine's local zone.
var Loc = time.FixedZone("PST", -8*60*60)

// Now is the reference instant for deterministic tests: Monday 2026-03-02 10:00 PST.
var Now = time.Date(2026, 3, 2, 10, 0, 0, 0, Loc)

// Day returns local midnight daysFromNow days after Now's date.
func Day(daysFromNow int) time.Time {
	y, m, d := Now.Date()
	return time.Date(y, m, d+daysFromNow, 0, 0, 0, 0, Loc)
}

// At returns hour:00 local on the day daysFromNow days after Now's date.
func At(daysFromNow, hour int) time.Time {
	return Day(daysFromNow).Add(time.Duration(hour) * time.Hour)
}

// Assignment options
type AssignmentOption func(*domain.Assignment)

func WithWeight(w float64) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Weight = w
	}
}

func WithDeadline(d time.Time) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Deadline = d
	}
}

// WithDueInDays sets the deadline to local midnight n days after Now's date.
func WithDueInDays(n int) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Deadline = Day(n)
	}
}

func WithID(id string) AssignmentOption {
	return func(a *domain.Assignment) {
		a.ID = id
	}
}

func NewTestAssignment(name string, opts ...AssignmentOption) domain.Assignment {
	a := domain.Assignment{
		ID:       fmt.Sprintf("asg-%03d", testIDCounter.Add(1)),
		Name:     name,
		Deadline: Day(14),
		Weight:   20,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Busy returns a busy interval on the day daysFromNow after Now's date,
// from startHour to endHour local.
func Busy(daysFromNow, startHour, endHour int) domain.Interval {
	return domain.Interval{
		Start: At(daysFromNow, startHour),
		End:   At(daysFromNow, endHour),
	}
}
