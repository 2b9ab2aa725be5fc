package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/domain"
)

// FormatSchedule renders the plan preview: one STUDY or DUE row per event in
// start order. Times are shown in the events' own zone.
func FormatSchedule(events []domain.ScheduleEvent) string {
	var b strings.Builder
	b.WriteString(Header("📅 Your Study Schedule"))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString(Dim("Nothing scheduled."))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range events {
		b.WriteString(FormatEvent(e))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEvent renders a single preview row.
func FormatEvent(e domain.ScheduleEvent) string {
	if e.IsStudy() {
		line := fmt.Sprintf("%s %s\n      %s",
			StyleStudyTag.Render("STUDY"),
			Bold(e.AssignmentName),
			Dim(fmt.Sprintf("Session %s • %s at %s - %s",
				e.SessionLabel(), DayLabel(e.Start), ClockLabel(e.Start), ClockLabel(e.End))),
		)
		if e.Conflicted {
			line += " " + StyleRed.Render("(overlaps existing events)")
		}
		return line
	}

	return fmt.Sprintf("%s   %s\n      %s",
		StyleDueTag.Render("DUE"),
		Bold("🚨 "+e.AssignmentName),
		Dim(fmt.Sprintf("%s by %s", DayLabel(e.Start), ClockLabel(e.Start))),
	)
}

// FormatPlan renders the preview, the stress panel, and any warnings of a
// plan run.
func FormatPlan(resp *app.PlanResponse) string {
	var b strings.Builder

	b.WriteString(FormatSchedule(resp.Events))
	if resp.Stress != nil {
		b.WriteString("\n")
		b.WriteString(FormatStress(resp.Stress))
		b.WriteString("\n")
	}
	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(resp.Warnings))
	}
	return b.String()
}

// FormatWarnings renders recoverable problems, one per line.
func FormatWarnings(warnings []app.Warning) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("⚠ " + w.Message))
		b.WriteString("\n")
	}
	return b.String()
}
