package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBusyCmd(a *App) *cobra.Command {
	var upcoming bool
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "busy <calendar.ics>",
		Short: "List the busy time read from a calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			now, err := parseNow(nowFlag, loc)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening calendar: %w", err)
			}
			defer f.Close()

			resp, err := a.Busy.Load(cmd.Context(), f, loc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Warning != nil {
				fmt.Fprint(out, formatter.FormatWarnings([]app.Warning{*resp.Warning}))
				return nil
			}

			intervals := resp.Intervals
			if upcoming {
				intervals = resp.BusyIntervalsFrom(now)
			}
			fmt.Fprintln(out, formatter.FormatBusyUpload(filepath.Base(args[0]), len(resp.Intervals)))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatBusyIntervals(intervals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only show busy time that has not ended yet")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference time for --upcoming")

	return cmd
}
