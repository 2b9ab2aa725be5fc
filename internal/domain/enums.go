package domain

type EventKind string

const (
	EventStudy    EventKind = "study"
	EventDeadline EventKind = "deadline"
)

type StressLevel string

const (
	StressChilling         StressLevel = "chilling"
	StressSlightlyToasted  StressLevel = "slightly_toasted"
	StressMediumCooked     StressLevel = "medium_cooked"
	StressWellDone         StressLevel = "well_done"
	StressAbsolutelyCooked StressLevel = "absolutely_cooked"
)

// StressLevels lists every level from least to most pressure.
var StressLevels = []StressLevel{
	StressChilling,
	StressSlightlyToasted,
	StressMediumCooked,
	StressWellDone,
	StressAbsolutelyCooked,
}
