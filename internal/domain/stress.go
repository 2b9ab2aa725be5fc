package domain

// StressResult is the derived workload classification for a batch of
// assignments.
type StressResult struct {
	Level   StressLevel
	Score   float64
	Message string
}

// Label returns the display name of the level.
func (l StressLevel) Label() string {
	switch l {
	case StressChilling:
		return "Chilling"
	case StressSlightlyToasted:
		return "Slightly Toasted"
	case StressMediumCooked:
		return "Medium Cooked"
	case StressWellDone:
		return "Well Done"
	case StressAbsolutelyCooked:
		return "Absolutely Cooked"
	default:
		return string(l)
	}
}

// Message returns the fixed advisory attached to the level.
func (l StressLevel) Message() string {
	switch l {
	case StressChilling:
		return "You've got this! Plenty of time to prep."
	case StressSlightlyToasted:
		return "Getting warm, but manageable with good planning."
	case StressMediumCooked:
		return "Time to buckle down and hit the books!"
	case StressWellDone:
		return "It's crunch time! Consider office hours and study groups."
	case StressAbsolutelyCooked:
		return "Emergency mode! Talk to profs about extensions if possible."
	default:
		return ""
	}
}

// Rank orders levels from 0 (chilling) to 4 (absolutely cooked); unknown
// levels rank -1.
func (l StressLevel) Rank() int {
	for i, lvl := range StressLevels {
		if lvl == l {
			return i
		}
	}
	return -1
}
