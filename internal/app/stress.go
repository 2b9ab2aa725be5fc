package app

import (
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

type StressRequest struct {
	Now         *time.Time
	Assignments []domain.Assignment
}

// AssignmentStress is one assignment's share of the total score.
type AssignmentStress struct {
	AssignmentID   string
	AssignmentName string
	Contribution   float64
}

type StressResponse struct {
	// Result is nil when there were no assignments.
	Result        *domain.StressResult
	Contributions []AssignmentStress
}
