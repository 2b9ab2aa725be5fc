package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }
	iv := Interval{Start: at(10), End: at(12)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(10), at(12)}, true},
		{"contained", Interval{at(10).Add(time.Minute), at(11)}, true},
		{"straddles start", Interval{at(9), at(11)}, true},
		{"straddles end", Interval{at(11), at(13)}, true},
		{"touches start", Interval{at(8), at(10)}, false},
		{"touches end", Interval{at(12), at(14)}, false},
		{"disjoint", Interval{at(15), at(16)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, iv.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(iv))
		})
	}
}

func TestAssignment_DeadlineAt(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	a := Assignment{Deadline: time.Date(2026, 4, 9, 0, 0, 0, 0, loc)}

	assert.Equal(t, time.Date(2026, 4, 9, 23, 59, 0, 0, loc), a.DeadlineAt(loc))
}

func TestStressLevel_LabelsAndRank(t *testing.T) {
	assert.Equal(t, "Chilling", StressChilling.Label())
	assert.Equal(t, "Absolutely Cooked", StressAbsolutelyCooked.Label())
	assert.Equal(t, 0, StressChilling.Rank())
	assert.Equal(t, 4, StressAbsolutelyCooked.Rank())
	assert.Equal(t, -1, StressLevel("raw").Rank())
	for _, l := range StressLevels {
		assert.NotEmpty(t, l.Message(), "level %s", l)
	}
}

func TestScheduleEvent_SessionLabel(t *testing.T) {
	e := ScheduleEvent{Kind: EventStudy, SessionIndex: 2, SessionTotal: 5}
	assert.Equal(t, "3/5", e.SessionLabel())
	assert.True(t, e.IsStudy())
}

func TestInterval_Duration(t *testing.T) {
	start := time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, 90*time.Minute, Interval{Start: start, End: start.Add(90 * time.Minute)}.Duration())
	assert.Zero(t, Interval{Start: start, End: start}.Duration())
}
