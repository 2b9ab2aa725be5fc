package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cooked/internal/cli"
	"github.com/alexanderramin/cooked/internal/config"
	"github.com/alexanderramin/cooked/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	app := &cli.App{
		Plan:    service.NewPlanService(cfg.WriterOptions(), observers...),
		Stress:  service.NewStressService(),
		Busy:    service.NewBusyCalendarService(observers...),
		Imports: service.NewImportService(),
		Config:  cfg,
	}

	// A piped stdout receives the calendar itself.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
