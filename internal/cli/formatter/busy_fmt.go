package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cooked/internal/domain"
)

// FormatBusyUpload renders the one-line summary shown after a calendar is
// read, e.g. "✓ classes.ics uploaded (12 events blocked)".
func FormatBusyUpload(fileName string, blocked int) string {
	noun := "events"
	if blocked == 1 {
		noun = "event"
	}
	return StyleGreen.Render(fmt.Sprintf("✓ %s uploaded (%d %s blocked)", fileName, blocked, noun))
}

// FormatBusyIntervals lists busy intervals in the given order.
func FormatBusyIntervals(intervals []domain.Interval) string {
	var b strings.Builder
	b.WriteString(Header("Busy time"))
	b.WriteString("\n")
	if len(intervals) == 0 {
		b.WriteString(Dim("No busy time found."))
		b.WriteString("\n")
		return b.String()
	}
	for _, iv := range intervals {
		b.WriteString(fmt.Sprintf("  %s  %s - %s %s\n",
			StyleBlue.Render(DayLabel(iv.Start)), ClockLabel(iv.Start), ClockLabel(iv.End),
			Dim("("+iv.Duration().String()+")")))
	}
	return b.String()
}
