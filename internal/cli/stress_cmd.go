package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStressCmd(a *App) *cobra.Command {
	var assignmentsPath string
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Show how cooked your assignment load is",
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

			resp, err := a.Stress.Evaluate(cmd.Context(), app.StressRequest{
				Now:         &now,
				Assignments: assignments,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatAssignments(assignments, now))
			fmt.Fprint(out, formatter.FormatStressBreakdown(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assignmentsPath, "assignments", "f", "", "Assignments file (YAML or JSON)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Evaluate as if it were this local time")
	_ = cmd.MarkFlagRequired("assignments")

	return cmd
}
