package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/calendar"
	"github.com/alexanderramin/cooked/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var assignmentsPath string
	var busyPath string
	var outputPath string
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a study schedule and export it as an .ics calendar",
		Long: `Schedules study sessions for every assignment, avoiding busy time from an
optional calendar, and exports sessions plus deadline reminders as iCalendar.

The calendar is written to --output (default: $COOKED_OUTPUT or study-plan.ics).
Use --output - to write it to stdout; when stdout is not a terminal and no
--output is given, the calendar is streamed to stdout as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			now, err := parseNow(nowFlag, loc)
			if err != nil {
				return err
			}

			assignments, err := a.Imports.ImportAssignments(cmd.Context(), assignmentsPath, loc)
			if err != nil {
				return err
			}

			req := app.NewPlanRequest(assignments)
			req.Now = &now
			if busyPath != "" {
				data, err := os.ReadFile(busyPath)
				if err != nil {
					return fmt.Errorf("reading busy calendar: %w", err)
				}
				req.BusyCalendar = data
			}

			resp, err := a.Plan.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			dest := outputPath
			if dest == "" && !a.interactive() {
				dest = "-"
			}
			if dest == "" {
				dest = a.Config.OutputPath
			}

			// Keep stdout clean for the calendar when streaming it.
			report := cmd.OutOrStdout()
			if dest == "-" {
				report = cmd.ErrOrStderr()
			}

			if busyPath != "" && !hasWarning(resp.Warnings, app.WarnBusyCalendarUnreadable) {
				fmt.Fprintln(report, formatter.FormatBusyUpload(filepath.Base(busyPath), resp.BusyIntervalCount))
				fmt.Fprintln(report)
			}
			fmt.Fprintln(report, formatter.FormatAssignments(assignments, now))
			fmt.Fprint(report, formatter.FormatPlan(resp))

			return writeCalendar(cmd.OutOrStdout(), report, dest, resp.Calendar)
		},
	}

	cmd.Flags().StringVarP(&assignmentsPath, "assignments", "f", "", "Assignments file (YAML or JSON)")
	cmd.Flags().StringVar(&busyPath, "busy", "", "Calendar (.ics) with busy time to avoid")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Where to write the calendar (- for stdout)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Plan as if it were this local time")
	_ = cmd.MarkFlagRequired("assignments")

	return cmd
}

func writeCalendar(stdout, report io.Writer, dest string, data []byte) error {
	if dest == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	fmt.Fprintf(report, "\n%s\n", formatter.StyleGreen.Render(
		fmt.Sprintf("Saved %s (%s). Import it into any calendar app.", dest, calendar.MediaType)))
	return nil
}

func hasWarning(warnings []app.Warning, code app.WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
