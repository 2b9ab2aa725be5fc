package service

import (
	"context"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/scheduler"
)

type stressService struct{}

func NewStressService() StressService {
	return &stressService{}
}

func (s *stressService) Evaluate(ctx context.Context, req app.StressRequest) (*app.StressResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := resolveNow(req.Now)

	contributions := make([]app.AssignmentStress, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		contributions = append(contributions, app.AssignmentStress{
			AssignmentID:   a.ID,
			AssignmentName: a.Name,
			Contribution:   scheduler.StressContribution(a, now),
		})
	}

	return &app.StressResponse{
		Result:        scheduler.EvaluateStress(req.Assignments, now),
		Contributions: contributions,
	}, nil
}
