package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

// MinStressDays clamps the days-until-deadline divisor so overdue and
// same-day assignments stay finite.
const MinStressDays = 0.5

var stressThresholds = []struct {
	below float64
	level domain.StressLevel
}{
	{5, domain.StressChilling},
	{15, domain.StressSlightlyToasted},
	{30, domain.StressMediumCooked},
	{50, domain.StressWellDone},
}

// StressContribution returns weight / max(daysUntil, 0.5) * 10 for one
// assignment, with daysUntil measured fractionally from now.
func StressContribution(a domain.Assignment, now time.Time) float64 {
	days := a.Deadline.Sub(now).Hours() / 24
	return a.Weight / math.Max(days, MinStressDays) * 10
}

// ClassifyStress maps a score to its level.
func ClassifyStress(score float64) domain.StressLevel {
	for _, t := range stressThresholds {
		if score < t.below {
			return t.level
		}
	}
	return domain.StressAbsolutelyCooked
}

// EvaluateStress sums the contribution of every assignment and classifies
// the total. It returns nil for an empty batch.
func EvaluateStress(assignments []domain.Assignment, now time.Time) *domain.StressResult {
	if len(assignments) == 0 {
		return nil
	}

	var total float64
	for _, a := range assignments {
		total += StressContribution(a, now)
	}

	level := ClassifyStress(total)
	return &domain.StressResult{
		Level:   level,
		Score:   total,
		Message: level.Message(),
	}
}
