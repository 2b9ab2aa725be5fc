package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/alexanderramin/cooked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studyEvents(events []domain.ScheduleEvent) []domain.ScheduleEvent {
	var out []domain.ScheduleEvent
	for _, e := range events {
		if e.IsStudy() {
			out = append(out, e)
		}
	}
	return out
}

func deadlineEvents(events []domain.ScheduleEvent) []domain.ScheduleEvent {
	var out []domain.ScheduleEvent
	for _, e := range events {
		if e.Kind == domain.EventDeadline {
			out = append(out, e)
		}
	}
	return out
}

func TestBuildSchedule_EmptyBatch(t *testing.T) {
	events := BuildSchedule(ScheduleInput{Now: testutil.Now})
	assert.Empty(t, events)
}

// TestBuildSchedule_TwoSessionsSpacedEvenly: weight 20 due in 10 days gives two
// sessions five days apart at 2 PM and a reminder at 23:59 on the due date.
func TestBuildSchedule_TwoSessionsSpacedEvenly(t *testing.T) {
	a := testutil.NewTestAssignment("Essay", testutil.WithWeight(20), testutil.WithDueInDays(10))

	events := BuildSchedule(ScheduleInput{
		Now:         testutil.Now,
		Assignments: []domain.Assignment{a},
	})

	require.Len(t, events, 3)

	assert.Equal(t, domain.EventStudy, events[0].Kind)
	assert.Equal(t, testutil.At(0, 14), events[0].Start)
	assert.Equal(t, testutil.At(0, 16), events[0].End)
	assert.Equal(t, "1/2", events[0].SessionLabel())

	assert.Equal(t, domain.EventStudy, events[1].Kind)
	assert.Equal(t, testutil.At(5, 14), events[1].Start)
	assert.Equal(t, "2/2", events[1].SessionLabel())

	due := testutil.Day(10).Add(23*time.Hour + 59*time.Minute)
	assert.Equal(t, domain.EventDeadline, events[2].Kind)
	assert.Equal(t, due, events[2].Start)
	assert.Equal(t, due, events[2].End)
	assert.Equal(t, a.ID, events[2].AssignmentID)

	assert.Zero(t, ConflictCount(events))
}

func TestBuildSchedule_PreferredSlotBlockedMovesToFirstFreeAnchor(t *testing.T) {
	a := testutil.NewTestAssignment("Midterm", testutil.WithWeight(20), testutil.WithDueInDays(10))

	tests := []struct {
		name      string
		busy      []domain.Interval
		wantStart time.Time
	}{
		{
			name:      "13-16 busy takes 9 AM",
			busy:      []domain.Interval{testutil.Busy(0, 13, 16)},
			wantStart: testutil.At(0, 9),
		},
		{
			name:      "9-15 busy takes 4 PM",
			busy:      []domain.Interval{testutil.Busy(0, 9, 15)},
			wantStart: testutil.At(0, 16),
		},
		{
			name:      "9-19 busy takes 7 PM",
			busy:      []domain.Interval{testutil.Busy(0, 9, 19)},
			wantStart: testutil.At(0, 19),
		},
		{
			name:      "whole day busy moves to next morning",
			busy:      []domain.Interval{testutil.Busy(0, 0, 24)},
			wantStart: testutil.At(1, 9),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			events := BuildSchedule(ScheduleInput{
				Now:         testutil.Now,
				Assignments: []domain.Assignment{a},
				Busy:        tc.busy,
			})

			sessions := studyEvents(events)
			require.Len(t, sessions, 2)
			assert.Equal(t, tc.wantStart, sessions[0].Start)
			assert.False(t, sessions[0].Conflicted)
			assert.Equal(t, testutil.At(5, 14), sessions[1].Start)
		})
	}
}

func TestBuildSchedule_SaturatedHorizonFallsBackToPreferred(t *testing.T) {
	a := testutil.NewTestAssignment("Thesis", testutil.WithWeight(10), testutil.WithDueInDays(4))
	busy := []domain.Interval{{Start: testutil.Day(-1), End: testutil.Day(90)}}

	events := BuildSchedule(ScheduleInput{
		Now:         testutil.Now,
		Assignments: []domain.Assignment{a},
		Busy:        busy,
	})

	sessions := studyEvents(events)
	require.Len(t, sessions, 2)
	assert.Equal(t, testutil.At(0, 14), sessions[0].Start)
	assert.Equal(t, testutil.At(2, 14), sessions[1].Start)
	assert.True(t, sessions[0].Conflicted)
	assert.True(t, sessions[1].Conflicted)
	assert.Equal(t, 2, ConflictCount(events))
	assert.Len(t, deadlineEvents(events), 1)
}

// TestBuildSchedule_ZeroSpacingStillDistinct covers a heavy assignment due
// sooner than its session count: every session prefers today, and the anchor
// search spreads them without overlap.
func TestBuildSchedule_ZeroSpacingStillDistinct(t *testing.T) {
	a := testutil.NewTestAssignment("Final", testutil.WithWeight(100), testutil.WithDueInDays(3))

	events := BuildSchedule(ScheduleInput{
		Now:         testutil.Now,
		Assignments: []domain.Assignment{a},
	})

	sessions := studyEvents(events)
	require.Len(t, sessions, 10)
	assertNoSessionOverlap(t, sessions)
	assert.Zero(t, ConflictCount(events))

	// 14:00 first, then the anchors of day 0, then day 1.
	assert.Equal(t, testutil.At(0, 9), sessions[0].Start)
	assert.Equal(t, testutil.At(0, 11), sessions[1].Start)
	assert.Equal(t, testutil.At(0, 14), sessions[2].Start)
	assert.Equal(t, 0, sessions[2].SessionIndex)
	assert.Equal(t, testutil.At(1, 9), sessions[5].Start)
}

func TestBuildSchedule_EarliestDeadlineClaimsSlotFirst(t *testing.T) {
	later := testutil.NewTestAssignment("Later", testutil.WithWeight(20), testutil.WithDueInDays(18))
	sooner := testutil.NewTestAssignment("Sooner", testutil.WithWeight(20), testutil.WithDueInDays(8))

	events := BuildSchedule(ScheduleInput{
		Now:         testutil.Now,
		Assignments: []domain.Assignment{later, sooner},
	})

	var soonerFirst, laterFirst domain.ScheduleEvent
	for _, e := range studyEvents(events) {
		if e.SessionIndex != 0 {
			continue
		}
		switch e.AssignmentID {
		case sooner.ID:
			soonerFirst = e
		case later.ID:
			laterFirst = e
		}
	}
	assert.Equal(t, testutil.At(0, 14), soonerFirst.Start)
	assert.Equal(t, testutil.At(0, 9), laterFirst.Start)
}

func TestBuildSchedule_BoundaryInputsDoNotPanic(t *testing.T) {
	assignments := []domain.Assignment{
		testutil.NewTestAssignment("Zero", testutil.WithWeight(0), testutil.WithDueInDays(5)),
		testutil.NewTestAssignment("Full", testutil.WithWeight(100), testutil.WithDueInDays(30)),
		testutil.NewTestAssignment("DueNow", testutil.WithWeight(30), testutil.WithDeadline(testutil.Now)),
		testutil.NewTestAssignment("Overdue", testutil.WithWeight(15), testutil.WithDueInDays(-4)),
	}

	events := BuildSchedule(ScheduleInput{Now: testutil.Now, Assignments: assignments})

	counts := make(map[string]int)
	for _, e := range studyEvents(events) {
		counts[e.AssignmentID]++
	}
	assert.Equal(t, 2, counts[assignments[0].ID])
	assert.Equal(t, 10, counts[assignments[1].ID])
	assert.Equal(t, 3, counts[assignments[2].ID])
	assert.Equal(t, 2, counts[assignments[3].ID])
	assert.Len(t, deadlineEvents(events), 4)
	assertSorted(t, events)
}

func TestBuildSchedule_Deterministic(t *testing.T) {
	input := ScheduleInput{
		Now: testutil.Now,
		Assignments: []domain.Assignment{
			testutil.NewTestAssignment("A", testutil.WithWeight(45), testutil.WithDueInDays(6)),
			testutil.NewTestAssignment("B", testutil.WithWeight(25), testutil.WithDueInDays(6)),
			testutil.NewTestAssignment("C", testutil.WithWeight(70), testutil.WithDueInDays(21)),
		},
		Busy: []domain.Interval{testutil.Busy(0, 8, 18), testutil.Busy(2, 13, 20)},
	}

	assert.Equal(t, BuildSchedule(input), BuildSchedule(input))
}

func TestBuildSchedule_DoesNotMutateInput(t *testing.T) {
	assignments := []domain.Assignment{
		testutil.NewTestAssignment("Late", testutil.WithDueInDays(20)),
		testutil.NewTestAssignment("Early", testutil.WithDueInDays(2)),
	}
	before := make([]domain.Assignment, len(assignments))
	copy(before, assignments)

	BuildSchedule(ScheduleInput{Now: testutil.Now, Assignments: assignments})

	assert.Equal(t, before, assignments)
}

func TestSessionCountAndDaysUntil(t *testing.T) {
	assert.Equal(t, 2, SessionCount(0))
	assert.Equal(t, 2, SessionCount(15))
	assert.Equal(t, 3, SessionCount(21))
	assert.Equal(t, 10, SessionCount(100))

	assert.Equal(t, 1, DaysUntil(testutil.Day(-3), testutil.Now))
	assert.Equal(t, 1, DaysUntil(testutil.Now, testutil.Now))
	assert.Equal(t, 10, DaysUntil(testutil.Day(10), testutil.Now))
}

func assertNoSessionOverlap(t *testing.T, sessions []domain.ScheduleEvent) {
	t.Helper()
	for i := range sessions {
		for j := i + 1; j < len(sessions); j++ {
			assert.False(t, sessions[i].Interval().Overlaps(sessions[j].Interval()),
				"sessions %d and %d overlap: %s / %s", i, j, sessions[i].Start, sessions[j].Start)
		}
	}
}

func assertSorted(t *testing.T, events []domain.ScheduleEvent) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Start.Before(events[i-1].Start),
			"events %d and %d out of order", i-1, i)
	}
}
