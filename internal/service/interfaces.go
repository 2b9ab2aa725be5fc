package service

import "github.com/alexanderramin/cooked/internal/app"

type PlanService = app.PlanUseCase

type StressService = app.StressUseCase

type BusyCalendarService = app.BusyCalendarUseCase

type ImportService = app.ImportAssignmentsUseCase
