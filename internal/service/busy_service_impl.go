package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/calendar"
)

type busyCalendarService struct {
	observer UseCaseObserver
}

func NewBusyCalendarService(observers ...UseCaseObserver) BusyCalendarService {
	return &busyCalendarService{observer: useCaseObserverOrNoop(observers)}
}

// Load reads a busy calendar and parses it. Read failures are returned as
// errors; an unreadable document is reported as a warning with no intervals.
func (s *busyCalendarService) Load(ctx context.Context, r io.Reader, loc *time.Location) (resp *app.BusyCalendarResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	var warnings []app.Warning
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-busy-calendar",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Warnings:  len(warnings),
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	data, err = io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading busy calendar: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	fields["bytes"] = len(data)

	resp = parseBusy(data, loc)
	fields["busy_intervals"] = len(resp.Intervals)
	if resp.Warning != nil {
		warnings = append(warnings, *resp.Warning)
		fields["warning"] = string(resp.Warning.Code)
	}
	return resp, nil
}

func parseBusy(data []byte, loc *time.Location) *app.BusyCalendarResponse {
	intervals, err := calendar.ParseIntervals(data, loc)
	if err != nil {
		return &app.BusyCalendarResponse{
			Warning: &app.Warning{
				Code:    app.WarnBusyCalendarUnreadable,
				Message: fmt.Sprintf("busy calendar ignored: %v", err),
			},
		}
	}
	return &app.BusyCalendarResponse{Intervals: intervals}
}
