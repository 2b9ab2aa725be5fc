package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cooked/internal/calendar"
	"github.com/alexanderramin/cooked/internal/domain"
)

// FormatAssignments renders the assignment list with due dates and weights.
func FormatAssignments(assignments []domain.Assignment, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Your Assignments"))
	b.WriteString("\n")

	if len(assignments) == 0 {
		b.WriteString(Dim("Add your first assignment to get started!"))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range assignments {
		b.WriteString(Bold(a.Name))
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("  Due: %s • Weight: %s%% • %s",
			LongDate(a.Deadline), calendar.FormatWeight(a.Weight), DaysLeft(a.Deadline, now))))
		b.WriteString("\n")
	}
	return b.String()
}
