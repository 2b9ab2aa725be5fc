package app

import (
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

type PlanRequest struct {
	Now         *time.Time
	Assignments []domain.Assignment
	// BusyCalendar is the raw iCalendar document to avoid; nil means no busy time.
	BusyCalendar []byte
}

func NewPlanRequest(assignments []domain.Assignment) PlanRequest {
	return PlanRequest{Assignments: assignments}
}

type PlanResponse struct {
	GeneratedAt time.Time
	Events      []domain.ScheduleEvent
	Stress      *domain.StressResult
	// Calendar is the exported iCalendar document.
	Calendar          []byte
	BusyIntervalCount int
	ConflictCount     int
	Warnings          []Warning
}
