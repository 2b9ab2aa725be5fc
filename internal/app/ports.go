package app

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
)

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type StressUseCase interface {
	Evaluate(ctx context.Context, req StressRequest) (*StressResponse, error)
}

type BusyCalendarUseCase interface {
	Load(ctx context.Context, r io.Reader, loc *time.Location) (*BusyCalendarResponse, error)
}

type ImportAssignmentsUseCase interface {
	ImportAssignments(ctx context.Context, filePath string, loc *time.Location) ([]domain.Assignment, error)
}
