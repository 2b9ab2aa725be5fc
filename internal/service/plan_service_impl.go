package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/calendar"
	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/alexanderramin/cooked/internal/scheduler"
)

type planService struct {
	writer   calendar.WriterOptions
	observer UseCaseObserver
}

func NewPlanService(writer calendar.WriterOptions, observers ...UseCaseObserver) PlanService {
	return &planService{
		writer:   writer,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Plan runs one full scheduling pass: parse busy time, place sessions,
// classify stress and encode the export. Nothing carries over between calls.
func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"assignments": len(req.Assignments),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Warnings:  warningCount(resp),
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	now := resolveNow(req.Now)
	resp = &app.PlanResponse{GeneratedAt: now}

	var busy []domain.Interval
	if req.BusyCalendar != nil {
		parsed := parseBusy(req.BusyCalendar, now.Location())
		busy = parsed.Intervals
		if parsed.Warning != nil {
			resp.Warnings = append(resp.Warnings, *parsed.Warning)
		}
	}
	resp.BusyIntervalCount = len(busy)

	resp.Events = scheduler.BuildSchedule(scheduler.ScheduleInput{
		Now:         now,
		Assignments: req.Assignments,
		Busy:        busy,
	})

	resp.ConflictCount = scheduler.ConflictCount(resp.Events)
	if resp.ConflictCount > 0 {
		resp.Warnings = append(resp.Warnings, app.Warning{
			Code: app.WarnSchedulingSaturated,
			Message: fmt.Sprintf("%d session(s) found no free slot within %d days and overlap other events",
				resp.ConflictCount, scheduler.SearchHorizonDays),
		})
	}

	resp.Stress = scheduler.EvaluateStress(req.Assignments, now)

	opts := s.writer
	opts.Stamp = now
	resp.Calendar, err = calendar.EncodeCalendar(resp.Events, opts)
	if err != nil {
		return nil, fmt.Errorf("exporting plan: %w", err)
	}

	fields["busy_intervals"] = resp.BusyIntervalCount
	fields["events"] = len(resp.Events)
	fields["conflicts"] = resp.ConflictCount
	return resp, nil
}

func warningCount(resp *app.PlanResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Warnings)
}
