package cli

import (
	"github.com/alexanderramin/cooked/internal/config"
	"github.com/alexanderramin/cooked/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan    service.PlanService
	Stress  service.StressService
	Busy    service.BusyCalendarService
	Imports service.ImportService

	Config config.Config

	// IsInteractive reports whether stdout is a terminal. When it is not,
	// plan streams the calendar to stdout instead of writing a file.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

// NewRootCmd creates the top-level "cooked" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cooked",
		Short:         "How cooked are you? Turn deadlines into a study calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newStressCmd(app),
		newBusyCmd(app),
	)

	return root
}
